package api

import (
	"github.com/yusufdinc974/LinguaReader-sub001/internal/jobs"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/services"
)

type Server struct {
	Quiz     services.QuizService
	Stats    services.StatsService
	Vocab    services.VocabService
	Settings services.SettingsService
	Imports  jobs.JobQueue

	// ForecastDays is the default window for the forecast endpoint when the
	// request does not specify one.
	ForecastDays int
}
