package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	acceptBookingHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/accept_booking"
	declineBookingHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/decline_booking"
	getBookingsHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_bookings"
	getDayGridHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_day_grid"
	getMonthMarkersHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_month_markers"
	getScheduleBucketsHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_schedule_buckets"
	getWeekGridHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_week_grid"
	updateBookingStatusHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	"github.com/m04kA/SMC-CalendarService/internal/config"
	bookingServiceClient "github.com/m04kA/SMC-CalendarService/internal/integrations/bookingservice"
	staffServiceClient "github.com/m04kA/SMC-CalendarService/internal/integrations/staffservice"
	bookingsService "github.com/m04kA/SMC-CalendarService/internal/service/bookings"
	getCalendarGridUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_calendar_grid"
	getMonthMarkersUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_month_markers"
	getScheduleBucketsUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_schedule_buckets"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
	"github.com/m04kA/SMC-CalendarService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CalendarService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционных клиентов
	bookingClient := bookingServiceClient.NewClient(
		cfg.BookingService.URL,
		time.Duration(cfg.BookingService.Timeout)*time.Second,
		log,
	)
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (BookingService=%s timeout=%ds, StaffService=%s timeout=%ds)",
		cfg.BookingService.URL, cfg.BookingService.Timeout, cfg.StaffService.URL, cfg.StaffService.Timeout)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingClient, log)

	// Инициализируем use cases
	scheduleBucketsUseCase := getScheduleBucketsUC.NewUseCase(bookingClient, log)
	calendarGridUseCase := getCalendarGridUC.NewUseCase(
		bookingClient,
		cfg.Schedule.GridStartHour,
		cfg.Schedule.GridEndHour,
		log,
	)
	monthMarkersUseCase := getMonthMarkersUC.NewUseCase(bookingClient, staffClient, log)

	// Инициализируем handlers
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	getScheduleBuckets := getScheduleBucketsHandler.NewHandler(scheduleBucketsUseCase, log)
	getDayGrid := getDayGridHandler.NewHandler(calendarGridUseCase, log)
	getWeekGrid := getWeekGridHandler.NewHandler(calendarGridUseCase, log)
	getMonthMarkers := getMonthMarkersHandler.NewHandler(monthMarkersUseCase, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	acceptBooking := acceptBookingHandler.NewHandler(bookingSvc, log)
	declineBooking := declineBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Отфильтрованный список бронирований
	api.HandleFunc("/places/{placeId}/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Расписание по временным группам
	api.HandleFunc("/places/{placeId}/schedule/buckets", getScheduleBuckets.Handle).Methods(http.MethodGet)

	// Дневная календарная сетка
	api.HandleFunc("/places/{placeId}/schedule/day", getDayGrid.Handle).Methods(http.MethodGet)

	// Недельная календарная сетка
	api.HandleFunc("/places/{placeId}/schedule/week", getWeekGrid.Handle).Methods(http.MethodGet)

	// Маркеры месячного календаря
	api.HandleFunc("/places/{placeId}/schedule/month", getMonthMarkers.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Смена статуса бронирования (через таблицу переходов)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Подтверждение pending бронирования
	protected.HandleFunc("/bookings/{bookingId}/accept", acceptBooking.Handle).Methods(http.MethodPatch)

	// Отклонение pending бронирования
	protected.HandleFunc("/bookings/{bookingId}/decline", declineBooking.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
