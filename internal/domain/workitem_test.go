package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func threeStepItem() *WorkItem {
	return &WorkItem{
		ID:     "WI-test",
		Status: StatusPendingApproval,
		ApprovalChain: []ApprovalStep{
			{ID: "s1", ApproverID: "U-1", Role: "Site Engineer", Decision: DecisionPending},
			{ID: "s2", ApproverID: "U-2", Role: "Project Manager", Decision: DecisionPending},
			{ID: "s3", ApproverID: "U-3", Role: "Operations Director", Decision: DecisionPending},
		},
	}
}

func TestRecordDecision_SingleRejectionRejectsItem(t *testing.T) {
	w := threeStepItem()
	w.ApprovalChain[0].Decision = DecisionApproved

	ok := w.RecordDecision("s2", DecisionRejected, "scope mismatch", testNow)
	require.True(t, ok)
	assert.Equal(t, StatusRejected, w.Status)
	assert.Equal(t, "scope mismatch", w.ApprovalChain[1].Comments)
	require.NotNil(t, w.ApprovalChain[1].DecisionDate)
	assert.Equal(t, testNow, *w.ApprovalChain[1].DecisionDate)
}

func TestRecordDecision_RejectionWinsRegardlessOfOrder(t *testing.T) {
	w := threeStepItem()
	w.ApprovalChain[1].Decision = DecisionRejected

	// A later approval must not undo the rejection.
	ok := w.RecordDecision("s3", DecisionApproved, "", testNow)
	require.True(t, ok)
	assert.Equal(t, StatusRejected, w.Status)
}

func TestRecordDecision_AllApprovedApprovesItem(t *testing.T) {
	w := threeStepItem()
	for _, step := range []string{"s1", "s2", "s3"} {
		require.True(t, w.RecordDecision(step, DecisionApproved, "", testNow))
	}
	assert.Equal(t, StatusApproved, w.Status)
}

func TestRecordDecision_PartialApprovalLeavesStatusUnchanged(t *testing.T) {
	w := threeStepItem()
	require.True(t, w.RecordDecision("s1", DecisionApproved, "", testNow))
	assert.Equal(t, StatusPendingApproval, w.Status)

	require.True(t, w.RecordDecision("s2", DecisionApproved, "", testNow))
	assert.Equal(t, StatusPendingApproval, w.Status, "2 of 3 approved is not approved")
}

func TestRecordDecision_ResetToPendingClearsPartialApproval(t *testing.T) {
	w := threeStepItem()
	require.True(t, w.RecordDecision("s1", DecisionApproved, "", testNow))
	require.True(t, w.RecordDecision("s1", DecisionPending, "reconsidering", testNow))
	assert.Equal(t, StatusPendingApproval, w.Status)
	assert.Equal(t, DecisionPending, w.ApprovalChain[0].Decision)
}

func TestRecordDecision_UnknownStep(t *testing.T) {
	w := threeStepItem()
	ok := w.RecordDecision("missing", DecisionApproved, "", testNow)
	assert.False(t, ok)
	assert.Equal(t, StatusPendingApproval, w.Status)
}

func TestRecordDecision_EmptyChainKeepsStatus(t *testing.T) {
	w := &WorkItem{Status: StatusOpen}
	ok := w.RecordDecision("s1", DecisionApproved, "", testNow)
	assert.False(t, ok)
	assert.Equal(t, StatusOpen, w.Status)
}

func TestWorkItemPatch_Apply(t *testing.T) {
	w := &WorkItem{
		Title:       "Pour foundation",
		Description: "Zone B",
		Priority:    PriorityMedium,
		Status:      StatusOpen,
		Tags:        []string{"civil"},
	}

	patch := WorkItemPatch{
		Title:    Ptr("Pour foundation - revised"),
		Priority: Ptr(PriorityHigh),
	}
	patch.Apply(w)

	assert.Equal(t, "Pour foundation - revised", w.Title)
	assert.Equal(t, PriorityHigh, w.Priority)
	assert.Equal(t, "Zone B", w.Description, "omitted field keeps its value")
	assert.Equal(t, StatusOpen, w.Status, "omitted field keeps its value")
	assert.Equal(t, []string{"civil"}, w.Tags)
}

func TestWorkItemPatch_Apply_ExplicitEmptyStringClearsField(t *testing.T) {
	w := &WorkItem{
		Title:       "Pour foundation",
		Description: "Zone B",
	}

	patch := WorkItemPatch{Description: Ptr("")}
	patch.Apply(w)

	assert.Equal(t, "", w.Description, "a set pointer applies even when it points at the zero value")
	assert.Equal(t, "Pour foundation", w.Title, "omitted field keeps its value")
}

func TestNewID_PrefixAndUniqueness(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		id := NewID(PrefixWorkItem)
		assert.True(t, len(id) > 3 && id[:3] == "WI-", "id %q must carry the WI- prefix", id)
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestTouch_StrictlyAdvances(t *testing.T) {
	prior := time.Now().UTC()
	for i := 0; i < 5; i++ {
		next := Touch(prior)
		assert.True(t, next.After(prior), "Touch must be strictly after prior")
		prior = next
	}
}

func TestTouch_FutureClockSkew(t *testing.T) {
	prior := time.Now().UTC().Add(time.Hour)
	next := Touch(prior)
	assert.True(t, next.After(prior))
}
