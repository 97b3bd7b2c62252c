package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic-management-api/internal/delivery/http/handler"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
	"clinic-management-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

// newAppointmentHandler wires a handler whose request paths under test fail
// before any database access, so no connection is needed.
func newAppointmentHandler() *handler.AppointmentHandler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	u := usecase.NewAppointmentUsecase(nil, log, nil, nil)
	return handler.NewAppointmentHandler(u, validator.NewValidator())
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return body
}

func TestBookAppointmentRejectsMalformedBody(t *testing.T) {
	h := newAppointmentHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.BookAppointment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := decodeResponse(t, rec)
	if body.Success {
		t.Error("success = true, want false")
	}
	if body.Message != "Invalid request body" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestBookAppointmentValidationErrors(t *testing.T) {
	h := newAppointmentHandler()

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"missing doctor", `{"patient_id":1,"date":"2025-06-01","time":"09:00"}`, "DoctorID"},
		{"missing date", `{"doctor_id":1,"patient_id":1,"time":"09:00"}`, "Date"},
		{"missing time", `{"doctor_id":1,"patient_id":1,"date":"2025-06-01"}`, "Time"},
		{"zero patient", `{"doctor_id":1,"patient_id":0,"date":"2025-06-01","time":"09:00"}`, "PatientID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.BookAppointment(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			body := decodeResponse(t, rec)
			if body.Message != "Validation failed" {
				t.Errorf("message = %q", body.Message)
			}
			fields, ok := body.Error.(map[string]interface{})
			if !ok {
				t.Fatalf("error payload = %T, want field map", body.Error)
			}
			if _, present := fields[tt.wantField]; !present {
				t.Errorf("field map %v missing %s", fields, tt.wantField)
			}
		})
	}
}

func TestBookAppointmentFormatErrorsVerbatim(t *testing.T) {
	h := newAppointmentHandler()

	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{
			"bad date",
			`{"doctor_id":1,"patient_id":1,"date":"01-06-2025","time":"09:00"}`,
			"Date must be in YYYY-MM-DD format (e.g., 2025-11-26).",
		},
		{
			"bad time",
			`{"doctor_id":1,"patient_id":1,"date":"2025-06-01","time":"9:00"}`,
			"Time must be in HH:MM 24-hour format (e.g., 09:30).",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.BookAppointment(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			body := decodeResponse(t, rec)
			if body.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", body.Message, tt.wantMessage)
			}
		})
	}
}

func TestListAppointmentsRejectsBadLimit(t *testing.T) {
	h := newAppointmentHandler()

	for _, limit := range []string{"abc", "-1", "0"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments?limit="+limit, nil)
		rec := httptest.NewRecorder()
		h.ListAppointments(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: status = %d, want 400", limit, rec.Code)
		}
	}
}

func TestGetSlotRejectsBadQuery(t *testing.T) {
	h := newAppointmentHandler()

	tests := []struct {
		name  string
		query string
	}{
		{"missing doctor id", "date=2025-06-01&time=09:00"},
		{"non-numeric doctor id", "doctor_id=abc&date=2025-06-01&time=09:00"},
		{"bad date", "doctor_id=1&date=June+1&time=09:00"},
		{"bad time", "doctor_id=1&date=2025-06-01&time=9am"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/slot?"+tt.query, nil)
			rec := httptest.NewRecorder()
			h.GetSlot(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}
