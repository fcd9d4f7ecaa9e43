package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"voyagemind/internal/models/request_models"
	"voyagemind/internal/models/response_models"
	mem "voyagemind/pkg/memcache"
	"voyagemind/pkg/utils"
)

const shareTTL = 7 * 24 * time.Hour

type ExportServiceInterface interface {
	BuildCalendar(req request_models.ExportCalendarRequest) (*CalendarExport, error)
	BuildPDFStub(req request_models.ExportPDFRequest) (*PDFExport, error)
	CreateShareLink(req request_models.ShareLinkRequest) (*ShareLink, error)
	GetShared(id string) (*mem.ShareRecord, error)
}

type CalendarExport struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	MimeType string `json:"mimeType"`
}

type PDFExport struct {
	Message     string `json:"message"`
	Filename    string `json:"filename"`
	DownloadURL string `json:"downloadUrl"`
	Note        string `json:"note"`
}

type ShareLink struct {
	ShareID   string `json:"shareId"`
	ShareURL  string `json:"shareUrl"`
	ExpiresIn string `json:"expiresIn"`
}

type ExportService struct {
	store mem.ShareStore
}

func NewExportService(store mem.ShareStore) ExportServiceInterface {
	return &ExportService{store: store}
}

// BuildCalendar renders an RFC 5545 VCALENDAR with one VEVENT per activity.
// Every activity of a day carries that day's date at midnight UTC.
func (s *ExportService) BuildCalendar(req request_models.ExportCalendarRequest) (*CalendarExport, error) {
	if len(req.Itinerary) == 0 || req.StartDate == "" {
		return nil, fmt.Errorf("%w: itinerary and start date required", utils.ErrInvalidInput)
	}

	baseDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date %q", utils.ErrInvalidInput, req.StartDate)
	}

	var ics strings.Builder
	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//VoyageMind//AI Travel Planner//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	fmt.Fprintf(&ics, "X-WR-CALNAME:%s Trip\r\n", req.Destination)

	for dayIndex, day := range req.Itinerary {
		dateStr := baseDate.AddDate(0, 0, dayIndex).UTC().Format("20060102T150405Z")

		for _, activity := range day.Activities {
			ics.WriteString("BEGIN:VEVENT\r\n")
			fmt.Fprintf(&ics, "UID:%s\r\n", uuid.NewString())
			fmt.Fprintf(&ics, "DTSTAMP:%s\r\n", dateStr)
			fmt.Fprintf(&ics, "DTSTART:%s\r\n", dateStr)
			fmt.Fprintf(&ics, "SUMMARY:%s\r\n", escapeICSText(activity.Title))
			fmt.Fprintf(&ics, "DESCRIPTION:%s\r\n", escapeICSText(activity.Description))
			fmt.Fprintf(&ics, "LOCATION:%s\r\n", escapeICSText(req.Destination))
			fmt.Fprintf(&ics, "CATEGORIES:%s\r\n", categoryOrDefault(activity))
			ics.WriteString("END:VEVENT\r\n")
		}
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return &CalendarExport{
		Filename: fmt.Sprintf("voyagemind-%s.ics", slugify(req.Destination)),
		Content:  ics.String(),
		MimeType: "text/calendar",
	}, nil
}

// BuildPDFStub acknowledges the export request without rendering anything.
// TODO: wire an actual renderer once the itinerary layout is final.
func (s *ExportService) BuildPDFStub(req request_models.ExportPDFRequest) (*PDFExport, error) {
	if len(req.Itinerary) == 0 {
		return nil, fmt.Errorf("%w: itinerary data required", utils.ErrInvalidInput)
	}

	return &PDFExport{
		Message:     "PDF generation initiated",
		Filename:    fmt.Sprintf("voyagemind-%s-itinerary.pdf", slugify(req.Destination)),
		DownloadURL: fmt.Sprintf("/api/download/pdf/%d", time.Now().UnixMilli()),
		Note:        "PDF rendering is not implemented; use the calendar export meanwhile",
	}, nil
}

func (s *ExportService) CreateShareLink(req request_models.ShareLinkRequest) (*ShareLink, error) {
	if len(req.Itinerary) == 0 {
		return nil, fmt.Errorf("%w: itinerary data required", utils.ErrInvalidInput)
	}

	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	shareID := hex.EncodeToString(buf)

	record := mem.ShareRecord{
		Itinerary:   req.Itinerary,
		Destination: req.Destination,
		Dates:       req.Dates,
		Budget:      req.Budget,
	}
	if err := s.store.Put(shareID, record, shareTTL); err != nil {
		return nil, err
	}

	return &ShareLink{
		ShareID:   shareID,
		ShareURL:  fmt.Sprintf("/api/shared/%s", shareID),
		ExpiresIn: "7 days",
	}, nil
}

func (s *ExportService) GetShared(id string) (*mem.ShareRecord, error) {
	record, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func categoryOrDefault(activity response_models.Activity) string {
	if activity.Category == "" {
		return "TRAVEL"
	}
	return activity.Category
}

func escapeICSText(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	text = strings.ReplaceAll(text, "\n", `\n`)
	text = strings.ReplaceAll(text, ",", `\,`)
	text = strings.ReplaceAll(text, ";", `\;`)
	return text
}

func slugify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "trip"
	}
	return strings.ReplaceAll(name, " ", "-")
}
