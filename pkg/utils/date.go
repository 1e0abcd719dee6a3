package utils

import (
	"fmt"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DayKey retorna a chave diária de bucketing no formato YYYY-MM-DD
func DayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// MonthKey retorna a chave mensal de bucketing no formato YYYY-MM
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// WeekKey retorna a chave semanal de bucketing no formato YYYY-Www, usando a
// numeração de semanas ISO-8601 (a semana que contém a quinta-feira da data
// determina o ano-semana e o número da semana)
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// MonthLabel retorna o rótulo exibido para um bucket mensal (nome do mês + ano)
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}

// WeekLabel retorna o rótulo exibido para um bucket semanal
func WeekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("Week %d (%d)", week, year)
}

// StartOfDay normaliza o instante para 00:00:00 no mesmo fuso
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay normaliza o instante para 23:59:59 no mesmo fuso
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
