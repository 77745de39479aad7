package service

import (
	"context"

	"medequip-backend/internal/domain"
	"medequip-backend/internal/repository"
)

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) Summary(ctx context.Context) (*domain.LedgerSummary, error) {
	return s.reportRepo.GetSummary(ctx)
}
