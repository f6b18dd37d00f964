package observability

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordAIRequest(t *testing.T) {
	okBefore := testutil.ToFloat64(aiRequestsTotal.WithLabelValues("answer", StatusOK))
	errBefore := testutil.ToFloat64(aiRequestsTotal.WithLabelValues("answer", StatusError))

	RecordAIRequest("answer", nil)
	RecordAIRequest("answer", errors.New("quota"))
	RecordAIRequest("answer", nil)

	assert.Equal(t, okBefore+2, testutil.ToFloat64(aiRequestsTotal.WithLabelValues("answer", StatusOK)))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(aiRequestsTotal.WithLabelValues("answer", StatusError)))
}

func TestRecordCommandAndReminder(t *testing.T) {
	before := testutil.ToFloat64(commandsTotal.WithLabelValues("streak"))
	RecordCommand("streak")
	assert.Equal(t, before+1, testutil.ToFloat64(commandsTotal.WithLabelValues("streak")))

	reminders := testutil.ToFloat64(remindersSentTotal)
	RecordReminderSent()
	assert.Equal(t, reminders+1, testutil.ToFloat64(remindersSentTotal))

	limited := testutil.ToFloat64(rateLimitedTotal)
	RecordRateLimited()
	assert.Equal(t, limited+1, testutil.ToFloat64(rateLimitedTotal))
}
