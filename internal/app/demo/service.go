package demo

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/yama6a/shared-rate/internal/pkg/account"
	"github.com/yama6a/shared-rate/internal/pkg/errors"
	"github.com/yama6a/shared-rate/internal/pkg/model"
	"github.com/yama6a/shared-rate/internal/pkg/store"
	"github.com/yama6a/shared-rate/internal/pkg/utils"
	"go.uber.org/zap"
)

// Service walks a set of accounts through one raise of the shared interest rate
// and writes what it observes as a transcript.
type Service struct {
	store     store.Store
	accounts  []*account.Account
	increment float64
	out       io.Writer
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(s store.Store, accounts []*account.Account, increment float64, out io.Writer, logger *zap.Logger) *Service {
	return &Service{
		store:     s,
		accounts:  accounts,
		increment: increment,
		out:       out,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Run prints every account's daily return, raises the shared rate by the configured
// increment and prints the daily returns again. The rate stays raised afterwards.
func (s *Service) Run() error {
	var b strings.Builder

	s.writeReturns(&b, "daily return")
	b.WriteString("\n")

	fmt.Fprintf(&b, "Current interest rate: %s\n", utils.FormatFloat(account.Interest()))
	s.raise()
	fmt.Fprintf(&b, "New interest rate: %s\n\n", utils.FormatFloat(account.Interest()))

	s.writeReturns(&b, "new daily return")
	b.WriteString("\n")

	if _, err := io.WriteString(s.out, b.String()); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrWriteTranscript, err)
	}

	changes, err := s.store.GetRateChanges()
	if err != nil {
		s.logger.Error("failed to get rateChanges", zap.Error(err))
		return nil
	}
	s.logger.Info("run finished",
		zap.Int("accounts", len(s.accounts)),
		zap.Int("rateChanges", len(changes)),
		zap.Float64("interestRate", account.Interest()),
	)

	return nil
}

func (s *Service) raise() {
	previous := account.Interest()
	account.RaiseInterest(s.increment)

	change := model.RateChange{
		Previous:  previous,
		Increment: s.increment,
		Current:   account.Interest(),
		ChangedAt: s.now(),
	}
	s.logger.Info("raised interest rate",
		zap.Float64("previous", change.Previous),
		zap.Float64("increment", change.Increment),
		zap.Float64("current", change.Current),
	)

	// the transcript does not depend on the history, a failed record is only logged
	if err := s.store.RecordRateChange(change); err != nil {
		s.logger.Error("failed to record rateChange", zap.Any("rateChange", change), zap.Error(err))
	}
}

func (s *Service) writeReturns(b *strings.Builder, label string) {
	rate := account.Interest()
	for _, a := range s.accounts {
		r := model.DailyReturn{
			Owner:  a.Owner(),
			Rate:   rate,
			Amount: a.Amount(),
			Return: a.DailyReturn(),
		}
		s.logger.Debug("computed daily return", zap.Any("dailyReturn", r))

		fmt.Fprintf(b, "%s's %s: %s\n", utils.ShortName(r.Owner), label, utils.FormatFloat(r.Return))
	}
}
