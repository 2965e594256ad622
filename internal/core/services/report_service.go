package services

import (
	"log"
	"time"

	"loanguard/internal/adapters/persistence/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ReportService logs a daily summary of recorded loan decisions (08:30)
type ReportService struct {
	db   *gorm.DB
	cron *cron.Cron
}

// NewReportService creates a new report service
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{
		db:   db,
		cron: cron.New(),
	}
}

// Start schedules the daily summary job
func (s *ReportService) Start() {
	_, err := s.cron.AddFunc("30 8 * * *", s.logDailySummary)
	if err != nil {
		log.Printf("Failed to schedule daily report: %v", err)
		return
	}
	s.cron.Start()
	log.Println("ReportService started (daily summary at 08:30)")
}

// Stop stops the scheduler, waiting for a running job to finish
func (s *ReportService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("ReportService stopped")
}

// logDailySummary counts the decisions recorded over the last 24 hours
func (s *ReportService) logDailySummary() {
	since := time.Now().Add(-24 * time.Hour)

	type statusCount struct {
		Status string
		Count  int64
	}

	var counts []statusCount
	err := s.db.Model(&models.LoanRequest{}).
		Select("status, count(*) as count").
		Where("created_at >= ?", since).
		Group("status").
		Scan(&counts).Error
	if err != nil {
		log.Printf("Daily report query error: %v", err)
		return
	}

	if len(counts) == 0 {
		log.Println("Daily report: no loan decisions recorded in the last 24h")
		return
	}
	for _, c := range counts {
		log.Printf("Daily report: %s=%d (last 24h)", c.Status, c.Count)
	}
}
