package usecase_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/oneuniverse/onboard/internal/application/port"
	portmocks "github.com/oneuniverse/onboard/internal/application/port/mocks"
	"github.com/oneuniverse/onboard/internal/application/usecase"
	"github.com/oneuniverse/onboard/internal/domain/entity"
	repomocks "github.com/oneuniverse/onboard/internal/domain/repository/mocks"
	"github.com/oneuniverse/onboard/internal/logging"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func selectionOf(t *testing.T, ids ...entity.CapabilityID) *entity.Selection {
	t.Helper()
	s := entity.NewSelection(entity.DefaultCatalog())
	for _, id := range ids {
		require.NoError(t, s.Set(id, true))
	}
	return s
}

func granting(token string) usecase.AcquisitionStrategy {
	return usecase.AcquisitionStrategyFunc(func(context.Context) (entity.Grant, error) {
		return entity.Grant{Token: token, Status: "granted"}, nil
	})
}

func failing(kind entity.ErrorKind, message string) usecase.AcquisitionStrategy {
	return usecase.AcquisitionStrategyFunc(func(context.Context) (entity.Grant, error) {
		return entity.Grant{}, entity.NewAcquisitionError(kind, message, nil)
	})
}

func allGranting() usecase.StrategyTable {
	return usecase.StrategyTable{
		entity.CapabilityCalendar:       granting("cal"),
		entity.CapabilityVideoHistory:   granting("yt"),
		entity.CapabilityDeviceActivity: granting(""),
		entity.CapabilityEmotionInput:   granting(""),
	}
}

// recordingStrategies wraps every strategy to record call order and
// detect overlapping acquisitions.
type recordingStrategies struct {
	mu         sync.Mutex
	order      []entity.CapabilityID
	active     atomic.Int32
	overlapped atomic.Bool
}

func (r *recordingStrategies) wrap(table usecase.StrategyTable) usecase.StrategyTable {
	out := make(usecase.StrategyTable, len(table))
	for id, strategy := range table {
		out[id] = usecase.AcquisitionStrategyFunc(func(ctx context.Context) (entity.Grant, error) {
			if r.active.Add(1) > 1 {
				r.overlapped.Store(true)
			}
			defer r.active.Add(-1)

			r.mu.Lock()
			r.order = append(r.order, id)
			r.mu.Unlock()

			time.Sleep(time.Millisecond)
			return strategy.Acquire(ctx)
		})
	}
	return out
}

func TestNegotiatePermissions_NothingSelected(t *testing.T) {
	tests := []struct {
		name      string
		selection *entity.Selection
	}{
		{name: "nil selection", selection: nil},
		{name: "all false", selection: entity.NewSelection(entity.DefaultCatalog())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			table := usecase.StrategyTable{}
			for _, id := range entity.NegotiationOrder {
				table[id] = usecase.AcquisitionStrategyFunc(func(context.Context) (entity.Grant, error) {
					calls.Add(1)
					return entity.Grant{}, nil
				})
			}
			audit := repomocks.NewMockConsentAuditRepository(t)
			metrics := portmocks.NewMockNegotiationMetrics(t)

			uc := usecase.NewNegotiatePermissionsUseCase(table, audit, metrics)
			result, err := uc.Execute(testContext(), usecase.NegotiateInput{Selection: tt.selection})

			require.ErrorIs(t, err, entity.ErrNoCapabilitiesSelected)
			assert.Nil(t, result)
			assert.Equal(t, int32(0), calls.Load(), "no acquisition side effect")
			audit.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
		})
	}
}

func TestNegotiatePermissions_UnselectedAreSkipped(t *testing.T) {
	uc := usecase.NewNegotiatePermissionsUseCase(allGranting(), nil, nil)

	result, err := uc.Execute(testContext(), usecase.NegotiateInput{
		Selection: selectionOf(t, entity.CapabilityVideoHistory),
	})
	require.NoError(t, err)

	results := result.Results()
	require.Len(t, results, len(entity.NegotiationOrder), "every capability has exactly one outcome")
	for _, id := range []entity.CapabilityID{
		entity.CapabilityCalendar,
		entity.CapabilityDeviceActivity,
		entity.CapabilityEmotionInput,
	} {
		assert.True(t, results[id].IsSkipped(), "%s should be skipped", id)
		assert.NotContains(t, result.Errors(), id)
	}
	assert.True(t, results[entity.CapabilityVideoHistory].IsGranted())
}

func TestNegotiatePermissions_CarriedGrants(t *testing.T) {
	calendar := &countingStrategy{strategy: granting("fresh-cal")}
	video := &countingStrategy{strategy: granting("fresh-yt")}
	uc := usecase.NewNegotiatePermissionsUseCase(usecase.StrategyTable{
		entity.CapabilityCalendar:     calendar,
		entity.CapabilityVideoHistory: video,
	}, nil, nil)

	result, err := uc.Execute(testContext(), usecase.NegotiateInput{
		Selection: selectionOf(t, entity.CapabilityCalendar, entity.CapabilityVideoHistory),
		Carried: map[entity.CapabilityID]entity.Outcome{
			entity.CapabilityCalendar:       entity.GrantedOutcome(entity.Grant{Token: "old-cal"}),
			entity.CapabilityVideoHistory:   entity.DeniedOutcome(entity.NewAcquisitionError(entity.ErrorKindPopupBlocked, "blocked", nil)),
			entity.CapabilityDeviceActivity: entity.GrantedOutcome(entity.Grant{Status: "granted"}),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int32(0), calendar.calls.Load())
	assert.Equal(t, int32(1), video.calls.Load(), "only grants are carried")

	cal, _ := result.Outcome(entity.CapabilityCalendar)
	grant, ok := cal.Grant()
	require.True(t, ok)
	assert.Equal(t, "old-cal", grant.Token)

	activity, _ := result.Outcome(entity.CapabilityDeviceActivity)
	assert.True(t, activity.IsSkipped(), "carried grants do not select a capability")
}

func TestNegotiatePermissions_AllGranted(t *testing.T) {
	uc := usecase.NewNegotiatePermissionsUseCase(allGranting(), nil, nil)

	result, err := uc.Execute(testContext(), usecase.NegotiateInput{
		Selection: selectionOf(t, entity.NegotiationOrder...),
	})

	require.NoError(t, err)
	assert.True(t, result.AllSatisfied())
	assert.False(t, result.HasErrors())
	assert.Empty(t, result.Errors())
}

func TestNegotiatePermissions_SequentialInFixedOrder(t *testing.T) {
	rec := &recordingStrategies{}
	uc := usecase.NewNegotiatePermissionsUseCase(rec.wrap(allGranting()), nil, nil)

	// Selection order must not matter.
	selection := selectionOf(t,
		entity.CapabilityEmotionInput,
		entity.CapabilityCalendar,
		entity.CapabilityDeviceActivity,
		entity.CapabilityVideoHistory,
	)

	_, err := uc.Execute(testContext(), usecase.NegotiateInput{Selection: selection})

	require.NoError(t, err)
	assert.Equal(t, entity.NegotiationOrder, rec.order)
	assert.False(t, rec.overlapped.Load(), "acquisitions must not overlap")
}

func TestNegotiatePermissions_FailureIsolation(t *testing.T) {
	for _, failed := range entity.NegotiationOrder {
		t.Run(string(failed), func(t *testing.T) {
			table := allGranting()
			table[failed] = failing(entity.ErrorKindOAuthProviderError, "access_denied")
			rec := &recordingStrategies{}

			uc := usecase.NewNegotiatePermissionsUseCase(rec.wrap(table), nil, nil)
			result, err := uc.Execute(testContext(), usecase.NegotiateInput{
				Selection: selectionOf(t, entity.NegotiationOrder...),
			})

			require.NoError(t, err)
			assert.Equal(t, entity.NegotiationOrder, rec.order, "negotiation must not short-circuit")

			outcome, ok := result.Outcome(failed)
			require.True(t, ok)
			assert.False(t, outcome.IsGranted())
			assert.True(t, outcome.IsDenied())

			errs := result.Errors()
			require.Len(t, errs, 1)
			assert.Equal(t, entity.ErrorKindOAuthProviderError, errs[failed].Kind)
			assert.False(t, result.AllSatisfied())
			assert.True(t, result.HasErrors())

			for _, id := range entity.NegotiationOrder {
				if id == failed {
					continue
				}
				o, _ := result.Outcome(id)
				assert.True(t, o.IsGranted(), "%s should still be granted", id)
			}
		})
	}
}

func TestNegotiatePermissions_ErrorClassification(t *testing.T) {
	tests := []struct {
		name        string
		strategy    usecase.AcquisitionStrategy
		wantKind    entity.ErrorKind
		wantMessage string
	}{
		{
			name:        "missing strategy",
			strategy:    nil,
			wantKind:    entity.ErrorKindUnsupportedCapability,
			wantMessage: "Unknown permission",
		},
		{
			name: "unclassified error",
			strategy: usecase.AcquisitionStrategyFunc(func(context.Context) (entity.Grant, error) {
				return entity.Grant{}, errors.New("unexpected host failure")
			}),
			wantKind:    entity.ErrorKindHostPermissionError,
			wantMessage: "unexpected host failure",
		},
		{
			name:        "classified error",
			strategy:    failing(entity.ErrorKindPopupBlocked, "Popup blocked. Please allow popups for this site."),
			wantKind:    entity.ErrorKindPopupBlocked,
			wantMessage: "Popup blocked. Please allow popups for this site.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := usecase.StrategyTable{}
			if tt.strategy != nil {
				table[entity.CapabilityCalendar] = tt.strategy
			}

			uc := usecase.NewNegotiatePermissionsUseCase(table, nil, nil)
			result, err := uc.Execute(testContext(), usecase.NegotiateInput{
				Selection: selectionOf(t, entity.CapabilityCalendar),
			})

			require.NoError(t, err)
			acqErr := result.Errors()[entity.CapabilityCalendar]
			require.NotNil(t, acqErr)
			assert.Equal(t, tt.wantKind, acqErr.Kind)
			assert.Equal(t, tt.wantMessage, acqErr.Message)
		})
	}
}

func TestNegotiatePermissions_CancelMarksRemainingCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	defer cancel()

	var laterCalls atomic.Int32
	table := usecase.StrategyTable{
		entity.CapabilityCalendar: usecase.AcquisitionStrategyFunc(func(ctx context.Context) (entity.Grant, error) {
			cancel()
			<-ctx.Done()
			return entity.Grant{}, ctx.Err()
		}),
		entity.CapabilityVideoHistory: usecase.AcquisitionStrategyFunc(func(context.Context) (entity.Grant, error) {
			laterCalls.Add(1)
			return entity.Grant{}, nil
		}),
		entity.CapabilityDeviceActivity: usecase.AcquisitionStrategyFunc(func(context.Context) (entity.Grant, error) {
			laterCalls.Add(1)
			return entity.Grant{}, nil
		}),
	}

	uc := usecase.NewNegotiatePermissionsUseCase(table, nil, nil)
	result, err := uc.Execute(ctx, usecase.NegotiateInput{
		Selection: selectionOf(t,
			entity.CapabilityCalendar,
			entity.CapabilityVideoHistory,
			entity.CapabilityDeviceActivity,
		),
	})

	require.NoError(t, err, "cancellation is reported in the result")
	assert.Equal(t, int32(0), laterCalls.Load(), "no strategy starts after cancellation")

	for _, id := range []entity.CapabilityID{
		entity.CapabilityCalendar,
		entity.CapabilityVideoHistory,
		entity.CapabilityDeviceActivity,
	} {
		o, _ := result.Outcome(id)
		assert.True(t, o.IsCancelled(), "%s should be cancelled", id)
	}
	emotion, _ := result.Outcome(entity.CapabilityEmotionInput)
	assert.True(t, emotion.IsSkipped(), "unselected stays skipped, not cancelled")

	assert.True(t, result.Cancelled())
	assert.False(t, result.HasErrors())
	assert.False(t, result.AllSatisfied())
	assert.Equal(t, []entity.CapabilityID{
		entity.CapabilityCalendar,
		entity.CapabilityVideoHistory,
		entity.CapabilityDeviceActivity,
	}, result.Unsatisfied())
}

func TestNegotiatePermissions_RejectsConcurrentNegotiation(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	table := usecase.StrategyTable{
		entity.CapabilityCalendar: usecase.AcquisitionStrategyFunc(func(context.Context) (entity.Grant, error) {
			close(entered)
			<-release
			return entity.Grant{Token: "cal"}, nil
		}),
	}
	uc := usecase.NewNegotiatePermissionsUseCase(table, nil, nil)

	done := make(chan error, 1)
	go func() {
		_, err := uc.Execute(testContext(), usecase.NegotiateInput{
			Selection: selectionOf(t, entity.CapabilityCalendar),
		})
		done <- err
	}()

	<-entered
	_, err := uc.Execute(testContext(), usecase.NegotiateInput{
		Selection: selectionOf(t, entity.CapabilityCalendar),
	})
	require.ErrorIs(t, err, usecase.ErrNegotiationInProgress)

	close(release)
	require.NoError(t, <-done)

	// The slot is free again once the first negotiation returns.
	table[entity.CapabilityCalendar] = granting("again")
	_, err = uc.Execute(testContext(), usecase.NegotiateInput{
		Selection: selectionOf(t, entity.CapabilityCalendar),
	})
	require.NoError(t, err)
}

func TestNegotiatePermissions_AuditAndMetrics(t *testing.T) {
	audit := repomocks.NewMockConsentAuditRepository(t)
	metrics := portmocks.NewMockNegotiationMetrics(t)

	table := allGranting()
	table[entity.CapabilityVideoHistory] = failing(entity.ErrorKindOAuthWindowClosed, "OAuth window closed")

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	uc := usecase.NewNegotiatePermissionsUseCase(table, audit, metrics)
	uc.SetClock(func() time.Time { return start })
	uc.SetIDGenerator(func() string { return "neg-1" })

	metrics.EXPECT().ObserveOutcome(entity.CapabilityCalendar, mock.Anything, mock.Anything).Return().Once()
	metrics.EXPECT().ObserveOutcome(entity.CapabilityVideoHistory, mock.Anything, mock.Anything).Return().Once()
	metrics.EXPECT().ObserveNegotiation(mock.AnythingOfType("*entity.NegotiationResult")).Return().Once()

	audit.EXPECT().Record(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, records []*entity.ConsentRecord) error {
			assert.NoError(t, ctx.Err())
			require.Len(t, records, 4)
			for _, r := range records {
				assert.Equal(t, "neg-1", r.NegotiationID)
				assert.Equal(t, start.Unix(), r.RecordedAt)
			}
			assert.Equal(t, entity.CapabilityCalendar, records[0].Capability)
			assert.Equal(t, entity.OutcomeGranted, records[0].Status)
			assert.Equal(t, entity.OutcomeDenied, records[1].Status)
			assert.Equal(t, entity.ErrorKindOAuthWindowClosed, records[1].ErrorKind)
			assert.Equal(t, entity.OutcomeSkipped, records[2].Status)
			return nil
		}).Once()

	result, err := uc.Execute(testContext(), usecase.NegotiateInput{
		Selection: selectionOf(t, entity.CapabilityCalendar, entity.CapabilityVideoHistory),
	})

	require.NoError(t, err)
	assert.Equal(t, "neg-1", result.ID())
	assert.Equal(t, start, result.StartedAt())
}

func TestNegotiatePermissions_AuditFailureDoesNotFailNegotiation(t *testing.T) {
	audit := repomocks.NewMockConsentAuditRepository(t)
	audit.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("database is locked")).Once()

	uc := usecase.NewNegotiatePermissionsUseCase(allGranting(), audit, nil)
	result, err := uc.Execute(testContext(), usecase.NegotiateInput{
		Selection: selectionOf(t, entity.CapabilityCalendar),
	})

	require.NoError(t, err)
	assert.True(t, result.AllSatisfied())
}

func TestNegotiatePermissions_AuditRunsAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	audit := repomocks.NewMockConsentAuditRepository(t)

	audit.EXPECT().Record(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ []*entity.ConsentRecord) error {
			assert.NoError(t, ctx.Err(), "audit must not inherit the cancellation")
			return nil
		}).Once()

	table := usecase.StrategyTable{
		entity.CapabilityCalendar: usecase.AcquisitionStrategyFunc(func(ctx context.Context) (entity.Grant, error) {
			cancel()
			return entity.Grant{}, ctx.Err()
		}),
	}

	uc := usecase.NewNegotiatePermissionsUseCase(table, audit, nil)
	result, err := uc.Execute(ctx, usecase.NegotiateInput{
		Selection: selectionOf(t, entity.CapabilityCalendar),
	})

	require.NoError(t, err)
	assert.True(t, result.Cancelled())
}

func TestNegotiatePermissions_CalendarSignInAndDegradedActivity(t *testing.T) {
	provider := portmocks.NewMockPlatformCapabilityProvider(t)
	provider.EXPECT().AuthClientInitialized().Return(true).Once()
	provider.EXPECT().SignIn(mock.Anything, usecase.DefaultCalendarScope).
		Return(port.AuthToken{AccessToken: "ya29.calendar-token"}, nil).Once()
	provider.EXPECT().IdleDetectionSupported().Return(false).Once()

	selection, err := entity.SelectionFromMap(entity.DefaultCatalog(), map[entity.CapabilityID]bool{
		entity.CapabilityCalendar:       true,
		entity.CapabilityVideoHistory:   false,
		entity.CapabilityDeviceActivity: true,
		entity.CapabilityEmotionInput:   false,
	})
	require.NoError(t, err)

	uc := usecase.NewNegotiatePermissionsUseCase(
		usecase.DefaultStrategies(provider, usecase.DefaultNegotiationConfig()), nil, nil)
	result, err := uc.Execute(testContext(), usecase.NegotiateInput{Selection: selection})
	require.NoError(t, err)

	calendar, _ := result.Outcome(entity.CapabilityCalendar)
	assert.True(t, calendar.IsGranted())
	grant, _ := calendar.Grant()
	assert.Equal(t, "ya29.calendar-token", grant.Token)

	video, _ := result.Outcome(entity.CapabilityVideoHistory)
	assert.True(t, video.IsSkipped())

	activity, _ := result.Outcome(entity.CapabilityDeviceActivity)
	assert.True(t, activity.IsGranted())
	activityGrant, _ := activity.Grant()
	assert.NotEmpty(t, activityGrant.Note)

	emotion, _ := result.Outcome(entity.CapabilityEmotionInput)
	assert.True(t, emotion.IsSkipped())

	assert.True(t, result.AllSatisfied())
	assert.False(t, result.HasErrors())
}

func TestNegotiatePermissions_CalendarPopupBlocked(t *testing.T) {
	provider := portmocks.NewMockPlatformCapabilityProvider(t)
	provider.EXPECT().AuthClientInitialized().Return(false).Once()
	provider.EXPECT().InitAuthClient(mock.Anything).Return(errors.New("auth client unavailable")).Once()
	provider.EXPECT().AddMessageListener(mock.Anything).Return(func() {}).Once()
	provider.EXPECT().OpenPopup(mock.Anything, mock.Anything).Return(nil, port.ErrPopupBlocked).Once()

	uc := usecase.NewNegotiatePermissionsUseCase(
		usecase.DefaultStrategies(provider, usecase.DefaultNegotiationConfig()), nil, nil)
	result, err := uc.Execute(testContext(), usecase.NegotiateInput{
		Selection: selectionOf(t, entity.CapabilityCalendar),
	})
	require.NoError(t, err)

	errs := result.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, entity.ErrorKindPopupBlocked, errs[entity.CapabilityCalendar].Kind)
	assert.False(t, result.AllSatisfied())
	assert.True(t, result.HasErrors())
}
