package handlers

import (
	"net/http"
	"testing"

	"classifieds/internal/service"
)

func TestAddInquiry(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		mock     *mockInquiries
		wantCode int
	}{
		{
			name:     "ok",
			body:     `{"content":"Is it still available?"}`,
			mock:     &mockInquiries{addID: 3},
			wantCode: http.StatusOK,
		},
		{
			name:     "missing content",
			body:     `{}`,
			mock:     &mockInquiries{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "listing gone",
			body:     `{"content":"hello"}`,
			mock:     &mockInquiries{addErr: service.ErrNotFound},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "content too long",
			body:     `{"content":"x"}`,
			mock:     &mockInquiries{addErr: &service.ValidationError{Msg: "content too long"}},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newAPIRouter(&service.Service{Inquiries: tc.mock})

			w := doJSON(r, http.MethodPost, "/api/v1/listings/9/inquiries", tc.body, true)

			if w.Code != tc.wantCode {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.wantCode, w.Body.String())
			}
			if tc.wantCode == http.StatusOK {
				if tc.mock.lastSender != 42 || tc.mock.lastListingID != 9 {
					t.Fatalf("add called with sender=%d listing=%d", tc.mock.lastSender, tc.mock.lastListingID)
				}
			}
		})
	}
}

func TestDeleteInquiry(t *testing.T) {
	cases := []struct {
		name     string
		mockErr  error
		wantCode int
	}{
		{"ok", nil, http.StatusOK},
		{"not the sender", service.ErrForbidden, http.StatusForbidden},
		{"missing inquiry", service.ErrNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inq := &mockInquiries{delErr: tc.mockErr}
			r := newAPIRouter(&service.Service{Inquiries: inq})

			w := doJSON(r, http.MethodDelete, "/api/v1/inquiries/4", "", true)

			if w.Code != tc.wantCode {
				t.Fatalf("status: got %d, want %d", w.Code, tc.wantCode)
			}
			if inq.lastCaller != 42 || inq.lastInquiryID != 4 {
				t.Fatalf("delete called with caller=%d inquiry=%d", inq.lastCaller, inq.lastInquiryID)
			}
		})
	}
}
