package application

import (
	"time"

	"github.com/opsource/opsctl/internal/domain"
)

// ValidateService wraps the pure protocol validator with a report timestamp.
type ValidateService struct {
	now func() time.Time
}

// NewValidateService creates a ValidateService using the wall clock.
func NewValidateService() *ValidateService {
	return &ValidateService{now: time.Now}
}

// Validate runs the BIP pattern validator over the input text. The report
// content is a pure function of the input; only the timestamp varies.
func (s *ValidateService) Validate(input string) domain.ValidationReport {
	report := domain.ValidateProtocol(input)
	report.Timestamp = s.now().UTC().Format(time.RFC3339)
	return report
}
