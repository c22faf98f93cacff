package schemas

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()
	if err == nil {
		t.Fatalf("expected validation error, got nil")
	}
	errs, ok := err.(validation.Errors)
	if !ok {
		t.Fatalf("expected validation.Errors, got %T: %v", err, err)
	}
	return errs
}

func validBlog() BlogInput {
	return BlogInput{
		Title:   "Launching the new platform",
		Content: strings.Repeat("All the details of the launch. ", 4),
		Status:  StatusDraft,
		Author:  "ops",
	}
}

func TestBlogInputValid(t *testing.T) {
	if err := validBlog().Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestBlogInputCollectsAllFieldErrors(t *testing.T) {
	errs := fieldErrors(t, BlogInput{}.Validate())

	for _, field := range []string{"title", "content", "status", "author"} {
		if _, ok := errs[field]; !ok {
			t.Fatalf("expected error for %q, got %v", field, errs)
		}
	}
}

func TestBlogInputTitleTooShort(t *testing.T) {
	input := validBlog()
	input.Title = "abcd"

	errs := fieldErrors(t, input.Validate())
	if _, ok := errs["title"]; !ok {
		t.Fatalf("expected title error, got %v", errs)
	}
}

func TestBlogInputRejectsDuplicateTags(t *testing.T) {
	input := validBlog()
	input.Tags = []string{"go", "release", "Go"}

	errs := fieldErrors(t, input.Validate())
	if _, ok := errs["tags"]; !ok {
		t.Fatalf("expected tags error, got %v", errs)
	}
}

func TestBlogInputRejectsTooManyTags(t *testing.T) {
	input := validBlog()
	for i := 0; i < 11; i++ {
		input.Tags = append(input.Tags, string(rune('a'+i)))
	}

	errs := fieldErrors(t, input.Validate())
	if _, ok := errs["tags"]; !ok {
		t.Fatalf("expected tags error, got %v", errs)
	}
}

func TestBlogInputRejectsOversizedCover(t *testing.T) {
	input := validBlog()
	input.CoverImage = &FileUpload{
		Name:        "cover.jpg",
		ContentType: "image/jpeg",
		Size:        3 * MB,
	}

	errs := fieldErrors(t, input.Validate())
	if errs["cover_image"] == nil {
		t.Fatalf("expected cover_image error, got %v", errs)
	}
}

func TestBlogInputRejectsWrongCoverType(t *testing.T) {
	input := validBlog()
	input.CoverImage = &FileUpload{
		Name:        "cover.pdf",
		ContentType: "application/pdf",
		Size:        MB,
	}

	errs := fieldErrors(t, input.Validate())
	if errs["cover_image"] == nil {
		t.Fatalf("expected cover_image error, got %v", errs)
	}
}

func TestPopupEndBeforeStart(t *testing.T) {
	input := PopupInput{
		Title:     "Spring sale",
		Status:    StatusPublished,
		StartDate: "2026-04-10",
		EndDate:   "2026-04-01",
	}

	errs := fieldErrors(t, input.Validate())
	if errs["end_date"] == nil {
		t.Fatalf("expected end_date error, got %v", errs)
	}
}

func TestPopupSameDayWindowAllowed(t *testing.T) {
	input := PopupInput{
		Title:     "Spring sale",
		Status:    StatusPublished,
		StartDate: "2026-04-10",
		EndDate:   "2026-04-10",
	}

	if err := input.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestPopupOrderingSkippedWithoutStart(t *testing.T) {
	input := PopupInput{
		Title:   "Spring sale",
		Status:  StatusPublished,
		EndDate: "2026-04-01",
	}

	if err := input.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestPopupAcceptsVideoMedia(t *testing.T) {
	input := PopupInput{
		Title:  "Spring sale",
		Status: StatusDraft,
		Media: &FileUpload{
			Name:        "promo.mp4",
			ContentType: "video/mp4",
			Size:        8 * MB,
		},
	}

	if err := input.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestTeamImageRequired(t *testing.T) {
	input := TeamInput{
		Name: "Dana Ortiz",
		Role: "Engineering",
	}

	errs := fieldErrors(t, input.Validate())
	if errs["image"] == nil {
		t.Fatalf("expected image error, got %v", errs)
	}
}

func TestTeamPersistedImagePathSatisfiesRequirement(t *testing.T) {
	input := TeamInput{
		Name:      "Dana Ortiz",
		Role:      "Engineering",
		ImagePath: "/uploads/team/dana.jpg",
	}

	if err := input.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestTestimonialRatingBounds(t *testing.T) {
	input := TestimonialInput{
		Name:    "Avery Chen",
		Message: "Excellent product, would recommend.",
		Rating:  6,
		Status:  StatusPending,
	}

	errs := fieldErrors(t, input.Validate())
	if errs["rating"] == nil {
		t.Fatalf("expected rating error, got %v", errs)
	}
}

func TestSettingRejectsMalformedURL(t *testing.T) {
	input := SettingInput{
		FacebookURL: "not-a-url",
	}

	errs := fieldErrors(t, input.Validate())
	if errs["facebook_url"] == nil {
		t.Fatalf("expected facebook_url error, got %v", errs)
	}
}

func TestFAQRejectsUnknownCategory(t *testing.T) {
	input := FAQInput{
		Question: "How do refunds work?",
		Answer:   "Refunds are processed in 3 to 5 days.",
		Category: "Billing",
		Status:   StatusPublished,
	}

	errs := fieldErrors(t, input.Validate())
	if errs["category"] == nil {
		t.Fatalf("expected category error, got %v", errs)
	}
}
