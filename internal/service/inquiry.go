package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"classifieds/internal/models"
	"classifieds/internal/repository"
)

const maxInquiryLen = 2000

type InquiryService struct {
	inquiries repository.Inquiries
	listings  repository.Listings
}

func NewInquiryService(inquiries repository.Inquiries, listings repository.Listings) *InquiryService {
	return &InquiryService{inquiries: inquiries, listings: listings}
}

var _ Inquiries = (*InquiryService)(nil)

// Add records an inquiry on an existing listing, timestamped at insertion.
func (s *InquiryService) Add(ctx context.Context, senderID, listingID int, content string) (int, error) {
	content = strings.TrimSpace(content)
	if content == "" || utf8.RuneCountInString(content) > maxInquiryLen {
		return 0, validationf("message must be 1-%d characters", maxInquiryLen)
	}

	l, err := s.listings.GetBasic(ctx, listingID)
	if err != nil {
		return 0, err
	}
	if l == nil {
		return 0, ErrNotFound
	}

	return s.inquiries.Create(ctx, models.Inquiry{
		ListingID: listingID,
		UserID:    senderID,
		Content:   content,
		SentAt:    time.Now().UTC(),
	})
}

// Delete removes an inquiry; only the original sender may do so.
func (s *InquiryService) Delete(ctx context.Context, callerID, inquiryID int) error {
	in, err := s.inquiries.GetByID(ctx, inquiryID)
	if err != nil {
		return err
	}
	if in == nil {
		return ErrNotFound
	}
	if in.UserID != callerID {
		return ErrForbidden
	}
	return s.inquiries.Delete(ctx, inquiryID)
}

// ListForListing returns a listing's inquiries, newest first.
func (s *InquiryService) ListForListing(ctx context.Context, listingID int) ([]models.Inquiry, error) {
	l, err := s.listings.GetBasic(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrNotFound
	}
	return s.inquiries.ListForListing(ctx, listingID)
}
