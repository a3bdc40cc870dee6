// internal/audit/service.go
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	cerrors "github.com/beigestudio/linkedin-lead-lab-report/internal/common/errors"
	"github.com/beigestudio/linkedin-lead-lab-report/internal/common/logger"
	"github.com/beigestudio/linkedin-lead-lab-report/internal/common/metrics"
)

// CompletionClient is the external generative-model collaborator. Complete
// must respect ctx cancellation and return a *errors.StandardError for
// classified provider failures.
type CompletionClient interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Mailer delivers the finished report to the submitter. Implementations are
// invoked fire-and-forget; their errors are logged, never propagated.
type Mailer interface {
	SendReport(ctx context.Context, profile ProfileInput, report Report) error
}

// Service runs the report-generation pipeline for one submission at a time:
// score, prompt, model call, parse, post-validate, detached email dispatch.
type Service struct {
	llm          CompletionClient
	mailer       Mailer
	emailTimeout time.Duration
	logger       logger.Logger
}

// NewService builds the pipeline. mailer may be nil when email delivery is
// disabled.
func NewService(llm CompletionClient, mailer Mailer, emailTimeout time.Duration, log logger.Logger) *Service {
	if emailTimeout <= 0 {
		emailTimeout = 15 * time.Second
	}
	return &Service{
		llm:          llm,
		mailer:       mailer,
		emailTimeout: emailTimeout,
		logger:       log,
	}
}

// GenerateAudit is the single boundary operation. It returns either a
// complete Result or a *errors.StandardError; parse problems never surface
// because the pipeline always falls back to a synthesized report.
func (s *Service) GenerateAudit(ctx context.Context, req Request) (*Result, error) {
	requestID := uuid.NewString()
	log := s.logger.WithFields(map[string]interface{}{
		"requestId": requestID,
	})

	start := time.Now()
	defer func() {
		metrics.AuditDuration.Observe(time.Since(start).Seconds())
	}()

	if req.Profile.Name == "" {
		err := cerrors.NewValidationFailedError("profile name is required")
		metrics.AuditsFailed.WithLabelValues(string(err.Code)).Inc()
		return nil, err
	}

	score := ComputeScore(req.Answers)
	log.Info("generating audit report", map[string]interface{}{
		"name":        req.Profile.Name,
		"answerCount": len(req.Answers),
		"score":       score,
	})

	prompt := BuildPrompt(req.Profile, req.Answers, req.Challenge, score)

	raw, err := s.llm.Complete(ctx, SystemPersona, prompt)
	if err != nil {
		stdErr := cerrors.AsStandardError(err)
		log.Error("model call failed", map[string]interface{}{
			"errorCode": string(stdErr.Code),
			"retryable": stdErr.Retryable,
			"details":   stdErr.Details,
		})
		metrics.AuditsFailed.WithLabelValues(string(stdErr.Code)).Inc()
		return nil, stdErr
	}

	report := ParseModelOutput(raw, req.Profile, score, log)
	report = patchReport(report, req.Profile, score)

	if s.mailer != nil {
		// Detached dispatch: the caller-visible result never waits on email
		// delivery, and send failures stay invisible to the end user.
		go s.dispatchEmail(log, req.Profile, report)
	}

	metrics.AuditsCompleted.Inc()
	log.Info("audit report generated", map[string]interface{}{
		"score": report.OverallScore,
	})

	return &Result{
		Report: report,
		Name:   req.Profile.Name,
		Email:  req.Profile.Email,
	}, nil
}

func (s *Service) dispatchEmail(log logger.Logger, profile ProfileInput, report Report) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("email dispatch panicked", map[string]interface{}{
				"panic": fmt.Sprint(r),
			})
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), s.emailTimeout)
	defer cancel()

	if err := s.mailer.SendReport(ctx, profile, report); err != nil {
		metrics.EmailsFailed.Inc()
		log.WithError(err).Error("audit email delivery failed", map[string]interface{}{
			"to": profile.Email,
		})
		return
	}

	metrics.EmailsSent.Inc()
	log.Info("audit email sent", map[string]interface{}{
		"to": profile.Email,
	})
}
