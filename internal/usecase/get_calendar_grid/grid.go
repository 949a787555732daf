package get_calendar_grid

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// gridConfig параметры вертикальной арифметики сетки.
// Дневная и недельная раскладки отличаются только масштабом.
type gridConfig struct {
	StartHour    int
	EndHour      int // не включительно
	HourHeightPx float64
	MinHeightPx  float64
}

// position вычисляет вертикальное смещение и высоту прямоугольника бронирования.
//
//	top = (минуты от начала сетки) / 60 * высота часа
//	height = max(длительность / 60 * высота часа, минимальная высота)
//
// Времена вне диапазона часов сетки дают top за пределами видимой области -
// позиция не обрезается. Пересечения бронирований не разрешаются: каждое
// получает независимую абсолютную позицию.
func position(startTime types.TimeString, durationMinutes int, cfg gridConfig) (top, height float64, err error) {
	totalMinutes, err := startTime.TotalMinutes()
	if err != nil {
		return 0, 0, err
	}

	offsetMinutes := totalMinutes - cfg.StartHour*60
	top = float64(offsetMinutes) / 60 * cfg.HourHeightPx

	height = float64(durationMinutes) / 60 * cfg.HourHeightPx
	if height < cfg.MinHeightPx {
		height = cfg.MinHeightPx
	}

	return top, height, nil
}

// dayColumn вычисляет смещение дня (0-6) от начала недели.
// Обе даты нормализованы к полуночи; шагаем по дням, а не делим интервал,
// чтобы переход на летнее время не сдвигал колонку.
func dayColumn(weekStart, date time.Time) int {
	column := 0
	for t := weekStart; t.Before(date) && column < 6; t = t.AddDate(0, 0, 1) {
		column++
	}
	return column
}
