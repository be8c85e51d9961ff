// Package server exposes the calculator engines as an HTTP JSON API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"go.uber.org/zap"

	"github.com/MohitJain0115/calc-suite/pkg/anniversary"
	"github.com/MohitJain0115/calc-suite/pkg/constants"
	"github.com/MohitJain0115/calc-suite/pkg/datetime"
	"github.com/MohitJain0115/calc-suite/pkg/loans"
	"github.com/MohitJain0115/calc-suite/pkg/savings"
	"github.com/MohitJain0115/calc-suite/pkg/workday"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	validate    *validator.Validate
	metrics     *metrics
}

// NewHandler constructs the HTTP handler that serves the calculator API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
		validate:    validator.New(),
		metrics:     newMetrics(),
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/api/loan/amortize", h.instrument("loan_amortize", h.handleAmortize))
	mux.HandleFunc("/api/loan/auto", h.instrument("loan_auto", h.handleAutoLoan))
	mux.HandleFunc("/api/savings", h.instrument("savings", h.handleSavings))
	mux.HandleFunc("/api/notice", h.instrument("notice", h.handleNotice))
	mux.HandleFunc("/api/probation", h.instrument("probation", h.handleProbation))
	mux.HandleFunc("/api/anniversary", h.instrument("anniversary", h.handleAnniversary))
	mux.HandleFunc("/api/version", h.handleVersion)
	mux.Handle("/metrics", h.metrics.handler())

	return mux
}

// statusRecorder captures the response status for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (h *handler) instrument(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(recorder, r)

		h.metrics.requests.WithLabelValues(endpoint, strconv.Itoa(recorder.status)).Inc()
		h.metrics.duration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
}

type amortizeRequest struct {
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annualRate"`
	TermYears  int     `json:"termYears"`
}

type amortizeRow struct {
	Month            int     `json:"month"`
	Payment          float64 `json:"payment"`
	Principal        float64 `json:"principal"`
	Interest         float64 `json:"interest"`
	RemainingBalance float64 `json:"remainingBalance"`
}

type amortizeResponse struct {
	MonthlyPayment float64       `json:"monthlyPayment"`
	TotalPaid      float64       `json:"totalPaid"`
	TotalInterest  float64       `json:"totalInterest"`
	Rows           []amortizeRow `json:"rows"`
	Warnings       []string      `json:"warnings,omitempty"`
}

func (h *handler) handleAmortize(w http.ResponseWriter, r *http.Request) {
	var req amortizeRequest
	if !h.decodeRequest(w, r, &req, "server.handleAmortize") {
		return
	}

	schedule := loans.Amortize(req.Principal, req.AnnualRate, req.TermYears)

	response := amortizeResponse{
		MonthlyPayment: schedule.MonthlyPayment,
		TotalPaid:      schedule.TotalPaid,
		TotalInterest:  schedule.TotalInterest,
		Rows:           make([]amortizeRow, 0, len(schedule.Rows)),
	}
	for _, row := range schedule.Rows {
		response.Rows = append(response.Rows, amortizeRow{
			Month:            row.Month,
			Payment:          row.Payment,
			Principal:        row.Principal,
			Interest:         row.Interest,
			RemainingBalance: row.RemainingBalance,
		})
	}
	if schedule.MonthlyPayment == 0 {
		response.Warnings = append(response.Warnings, "inputs produced an empty schedule")
	}

	h.writeJSON(w, http.StatusOK, response)
}

type autoLoanRequest struct {
	VehiclePrice float64 `json:"vehiclePrice"`
	DownPayment  float64 `json:"downPayment"`
	TradeIn      float64 `json:"tradeIn"`
	AnnualRate   float64 `json:"annualRate"`
	TermMonths   int     `json:"termMonths"`
}

type autoLoanResponse struct {
	FinancedAmount float64  `json:"financedAmount"`
	MonthlyPayment float64  `json:"monthlyPayment"`
	TotalPaid      float64  `json:"totalPaid"`
	TotalInterest  float64  `json:"totalInterest"`
	Warnings       []string `json:"warnings,omitempty"`
}

func (h *handler) handleAutoLoan(w http.ResponseWriter, r *http.Request) {
	var req autoLoanRequest
	if !h.decodeRequest(w, r, &req, "server.handleAutoLoan") {
		return
	}

	quote := loans.AutoLoan(req.VehiclePrice, req.DownPayment, req.TradeIn, req.AnnualRate, req.TermMonths)

	response := autoLoanResponse{
		FinancedAmount: quote.FinancedAmount,
		MonthlyPayment: quote.MonthlyPayment,
		TotalPaid:      quote.TotalPaid,
		TotalInterest:  quote.TotalInterest,
	}
	if quote.MonthlyPayment == 0 {
		response.Warnings = append(response.Warnings, "inputs produced an empty quote")
	}

	h.writeJSON(w, http.StatusOK, response)
}

type savingsRequest struct {
	Initial             float64 `json:"initial"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	AnnualRate          float64 `json:"annualRate"`
	Years               int     `json:"years"`
}

type savingsRow struct {
	Year          int     `json:"year"`
	EndBalance    float64 `json:"endBalance"`
	Contributions float64 `json:"contributions"`
	Interest      float64 `json:"interest"`
}

type savingsResponse struct {
	FinalBalance       float64      `json:"finalBalance"`
	TotalContributions float64      `json:"totalContributions"`
	TotalInterest      float64      `json:"totalInterest"`
	Rows               []savingsRow `json:"rows"`
	Warnings           []string     `json:"warnings,omitempty"`
}

func (h *handler) handleSavings(w http.ResponseWriter, r *http.Request) {
	var req savingsRequest
	if !h.decodeRequest(w, r, &req, "server.handleSavings") {
		return
	}

	projection := savings.Project(req.Initial, req.MonthlyContribution, req.AnnualRate, req.Years)

	response := savingsResponse{
		FinalBalance:       projection.FinalBalance,
		TotalContributions: projection.TotalContributions,
		TotalInterest:      projection.TotalInterest,
		Rows:               make([]savingsRow, 0, len(projection.Rows)),
	}
	for _, row := range projection.Rows {
		response.Rows = append(response.Rows, savingsRow{
			Year:          row.Year,
			EndBalance:    row.EndBalance,
			Contributions: row.Contributions,
			Interest:      row.Interest,
		})
	}
	if len(projection.Rows) == 0 {
		response.Warnings = append(response.Warnings, "inputs produced an empty projection")
	}

	h.writeJSON(w, http.StatusOK, response)
}

type noticeRequest struct {
	ResignationDate string `json:"resignationDate" validate:"required"`
	Duration        int    `json:"duration"`
	Unit            string `json:"unit" validate:"required,oneof=days weeks months"`
	Holidays        string `json:"holidays"`
}

type noticeResponse struct {
	PeriodEnd        string   `json:"periodEnd"`
	LastWorkingDay   string   `json:"lastWorkingDay"`
	HolidaysObserved int      `json:"holidaysObserved"`
	Warnings         []string `json:"warnings,omitempty"`
}

func (h *handler) handleNotice(w http.ResponseWriter, r *http.Request) {
	h.handleWorkdayRequest(w, r, "server.handleNotice", workday.LastWorkingDay)
}

func (h *handler) handleProbation(w http.ResponseWriter, r *http.Request) {
	h.handleWorkdayRequest(w, r, "server.handleProbation", workday.ProbationEnd)
}

func (h *handler) handleWorkdayRequest(w http.ResponseWriter, r *http.Request, op string,
	compute func(time.Time, workday.Duration, workday.HolidaySet) workday.Notice) {

	var req noticeRequest
	if !h.decodeRequest(w, r, &req, op) {
		return
	}

	startDate, err := datetime.ParseDate(req.ResignationDate)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid date %q: expected %s", req.ResignationDate, constants.DateLayout), op)
		return
	}

	holidays, warnings := workday.ParseHolidays(req.Holidays)
	unit, _ := workday.ParseUnit(req.Unit) // validated by struct tag

	notice := compute(startDate, workday.Duration{Value: req.Duration, Unit: unit}, holidays)

	h.writeJSON(w, http.StatusOK, noticeResponse{
		PeriodEnd:        notice.PeriodEnd.Format(constants.DateLayout),
		LastWorkingDay:   notice.LastWorkingDay.Format(constants.DateLayout),
		HolidaysObserved: notice.HolidaysObserved,
		Warnings:         warnings,
	})
}

type anniversaryRequest struct {
	HireDate string `json:"hireDate" validate:"required"`
	Today    string `json:"today"`
}

type milestoneRecord struct {
	Year      int    `json:"year"`
	Date      string `json:"date"`
	DaysUntil int    `json:"daysUntil"`
}

type anniversaryResponse struct {
	TotalYears int               `json:"totalYears"`
	Next       milestoneRecord   `json:"next"`
	Past       []milestoneRecord `json:"past"`
	Upcoming   []milestoneRecord `json:"upcoming"`
}

func (h *handler) handleAnniversary(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleAnniversary"

	var req anniversaryRequest
	if !h.decodeRequest(w, r, &req, op) {
		return
	}

	hireDate, err := datetime.ParseDate(req.HireDate)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid hire date %q: expected %s", req.HireDate, constants.DateLayout), op)
		return
	}

	today := datetime.Truncate(time.Now())
	if req.Today != "" {
		today, err = datetime.ParseDate(req.Today)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid reference date %q: expected %s", req.Today, constants.DateLayout), op)
			return
		}
	}

	projection := anniversary.Project(hireDate, today)

	response := anniversaryResponse{
		TotalYears: projection.TotalYears,
		Next:       toMilestoneRecord(projection.Next),
		Past:       make([]milestoneRecord, 0, len(projection.Past)),
		Upcoming:   make([]milestoneRecord, 0, len(projection.Upcoming)),
	}
	for _, m := range projection.Past {
		response.Past = append(response.Past, toMilestoneRecord(m))
	}
	for _, m := range projection.Upcoming {
		response.Upcoming = append(response.Upcoming, toMilestoneRecord(m))
	}

	h.writeJSON(w, http.StatusOK, response)
}

func toMilestoneRecord(m anniversary.Milestone) milestoneRecord {
	return milestoneRecord{
		Year:      m.Year,
		Date:      m.Date.Format(constants.DateLayout),
		DaysUntil: m.DaysUntil,
	}
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodeRequest enforces the POST method and body limit, decodes the JSON
// payload, and runs struct validation. It writes the error response itself
// and reports whether the handler should proceed.
func (h *handler) decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}, op string) bool {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}

	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}

	if err := h.validate.Struct(payload); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			h.respondError(w, http.StatusBadRequest, formatValidationErrors(validationErrs), op)
			return false
		}
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return false
	}

	return true
}

func formatValidationErrors(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		switch err.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", err.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("field %s must be one of: %s", err.Field(), err.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is invalid", err.Field()))
		}
	}
	return strings.Join(msgs, "; ")
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
