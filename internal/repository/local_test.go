package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/enjaz/internal/domain"
	"github.com/alexanderramin/enjaz/internal/session"
	"github.com/alexanderramin/enjaz/internal/testutil"
)

func newLocal(t *testing.T) *Provider {
	t.Helper()
	return NewLocalProvider(testutil.NewTestStore(t), session.NewStore(""), nil)
}

func TestLocal_FirstReadSeedsDefaults(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	mats, err := p.Materials.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, mats, "empty store must seed the default dataset")

	ids := make([]string, 0, len(mats))
	for _, m := range mats {
		ids = append(ids, m.ID)
	}
	assert.Contains(t, ids, "MAT-1")

	// Seeding is a one-time event, not re-applied on later reads.
	again, err := p.Materials.List(ctx)
	require.NoError(t, err)
	assert.Len(t, again, len(mats))
}

func TestLocal_CacheReflectsMutations(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	_, err := p.WorkItems.List(ctx) // warm the cache
	require.NoError(t, err)

	created, err := p.WorkItems.Create(ctx, testutil.WorkItemFixture("X"))
	require.NoError(t, err)

	items, err := p.WorkItems.List(ctx)
	require.NoError(t, err)
	titles := make([]string, 0, len(items))
	for _, it := range items {
		titles = append(titles, it.Title)
	}
	assert.Contains(t, titles, "X", "non-forced read after a mutation must see it")
	assert.Equal(t, created.ID, items[0].ID, "feeds list newest first")
}

func TestLocal_UpdateBumpsVersionAndTimestamp(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	created, err := p.WorkItems.Create(ctx, testutil.WorkItemFixture("versioned"))
	require.NoError(t, err)

	updated, err := p.WorkItems.Update(ctx, created.ID, domain.WorkItemPatch{
		Title: domain.Ptr("versioned v2"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, created.Version+1, updated.Version)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt), "updatedAt must strictly advance")
	assert.Equal(t, "versioned v2", updated.Title)
	assert.Equal(t, created.Description, updated.Description, "omitted patch fields keep their value")
}

func TestLocal_UpdateExplicitEmptyStringClearsField(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	created, err := p.WorkItems.Create(ctx, testutil.WorkItemFixture("clearable"))
	require.NoError(t, err)
	require.NotEmpty(t, created.Description)

	updated, err := p.WorkItems.Update(ctx, created.ID, domain.WorkItemPatch{
		Description: domain.Ptr(""),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "", updated.Description, "explicit empty-string patch must clear the field")
	assert.Equal(t, created.Title, updated.Title)

	got, err := p.WorkItems.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "", got.Description)
}

func TestLocal_UpdateUnknownIDReturnsNilNil(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	before, err := p.WorkItems.List(ctx)
	require.NoError(t, err)

	got, err := p.WorkItems.Update(ctx, "WI-nope", domain.WorkItemPatch{Title: domain.Ptr("ghost")})
	require.NoError(t, err)
	assert.Nil(t, got)

	after, err := p.WorkItems.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before), "a missed update must not create a record")
}

func TestLocal_CreateTwiceYieldsDistinctIDs(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	a, err := p.WorkItems.Create(ctx, testutil.WorkItemFixture("first"))
	require.NoError(t, err)
	b, err := p.WorkItems.Create(ctx, testutil.WorkItemFixture("second"))
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 1, a.Version)
	assert.Equal(t, 1, b.Version)
}

func TestLocal_DeleteAbsentDocumentIsNoOp(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	doc, err := p.Documents.Upload(ctx, domain.Document{Title: "site plan", ProjectID: "P001"})
	require.NoError(t, err)

	require.NoError(t, p.Documents.Delete(ctx, "DOC-nope"))
	docs, err := p.Documents.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	require.NoError(t, p.Documents.Delete(ctx, doc.ID))
	require.NoError(t, p.Documents.Delete(ctx, doc.ID), "second delete is idempotent")
	docs, err = p.Documents.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestLocal_StockAdjustment(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	mat, err := p.Materials.Create(ctx, testutil.MaterialFixture("test cement", 100))
	require.NoError(t, err)

	out, err := p.Materials.AdjustStock(ctx, mat.ID, 30, domain.MovementOutbound, "issued to site", "U-1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 70.0, out.CurrentStock)

	in, err := p.Materials.AdjustStock(ctx, mat.ID, 60, domain.MovementInbound, "restock", "U-1")
	require.NoError(t, err)
	assert.Equal(t, 130.0, in.CurrentStock)

	moves, err := p.Materials.Movements(ctx, mat.ID)
	require.NoError(t, err)
	require.Len(t, moves, 2)
	assert.Equal(t, domain.MovementInbound, moves[0].Direction, "ledger is newest first")
	assert.Equal(t, domain.MovementOutbound, moves[1].Direction)
	assert.Equal(t, "issued to site", moves[1].Note)
}

func TestLocal_AdjustStockUnknownMaterial(t *testing.T) {
	p := newLocal(t)
	out, err := p.Materials.AdjustStock(context.Background(), "MAT-nope", 5, domain.MovementInbound, "", "U-1")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestLocal_ApprovalChainThroughRepository(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	item := testutil.WorkItemFixture("chain")
	item.Status = domain.StatusPendingApproval
	item.ApprovalChain = testutil.ThreeStepChain()
	created, err := p.WorkItems.Create(ctx, item)
	require.NoError(t, err)

	// One rejection rejects the whole item.
	got, err := p.WorkItems.SubmitApproval(ctx, created.ID, "AS-2", domain.DecisionRejected, "insufficient cover")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.StatusRejected, got.Status)
	assert.Equal(t, created.Version+1, got.Version)

	// A fresh item approves only once every step approves.
	item2 := testutil.WorkItemFixture("chain2")
	item2.Status = domain.StatusPendingApproval
	item2.ApprovalChain = testutil.ThreeStepChain()
	created2, err := p.WorkItems.Create(ctx, item2)
	require.NoError(t, err)

	for i, stepID := range []string{"AS-1", "AS-2"} {
		got, err = p.WorkItems.SubmitApproval(ctx, created2.ID, stepID, domain.DecisionApproved, "")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPendingApproval, got.Status, "step %d must not resolve the chain", i+1)
	}
	got, err = p.WorkItems.SubmitApproval(ctx, created2.ID, "AS-3", domain.DecisionApproved, "")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)
}

func TestLocal_SubmitApprovalUnknownStep(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	item := testutil.WorkItemFixture("chain")
	item.ApprovalChain = testutil.ThreeStepChain()
	created, err := p.WorkItems.Create(ctx, item)
	require.NoError(t, err)

	got, err := p.WorkItems.SubmitApproval(ctx, created.ID, "AS-99", domain.DecisionApproved, "")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLocal_UpdateStatusRejectsUnknownValue(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	created, err := p.WorkItems.Create(ctx, testutil.WorkItemFixture("status"))
	require.NoError(t, err)

	_, err = p.WorkItems.UpdateStatus(ctx, created.ID, domain.Status("Bogus"))
	require.ErrorIs(t, err, domain.ErrInvalidStatus)

	got, err := p.WorkItems.UpdateStatus(ctx, created.ID, domain.StatusDone)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, got.Status)
}

func TestLocal_PayrollGeneration(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	records, err := p.Payroll.GeneratePeriod(ctx, "March", 2024)
	require.NoError(t, err)
	require.Len(t, records, 2, "one record per seeded employee")
	assert.Equal(t, "PAY-EMP-1-March-2024", records[0].ID)
	assert.Equal(t, domain.PayrollDraft, records[0].Status)
	assert.Equal(t, 4200+10*26*1.5, records[0].NetPay)

	// Regeneration upserts, it does not duplicate.
	_, err = p.Payroll.GeneratePeriod(ctx, "March", 2024)
	require.NoError(t, err)
	listed, err := p.Payroll.ListPeriod(ctx, "March", 2024)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	approved, err := p.Payroll.Approve(ctx, records[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PayrollApproved, approved.Status)

	paid, err := p.Payroll.MarkPaid(ctx, records[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PayrollPaid, paid.Status)
}

func TestLocal_MarkAllReadIsScopedToUser(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := p.Notifications.Create(ctx, domain.Notification{UserID: "U-1", Title: "t", Message: "m"})
		require.NoError(t, err)
	}
	_, err := p.Notifications.Create(ctx, domain.Notification{UserID: "U-2", Title: "t", Message: "m"})
	require.NoError(t, err)

	n, err := p.Notifications.UnreadCount(ctx, "U-1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, p.Notifications.MarkAllRead(ctx, "U-1"))

	n, err = p.Notifications.UnreadCount(ctx, "U-1")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	other, err := p.Notifications.UnreadCount(ctx, "U-2")
	require.NoError(t, err)
	assert.Equal(t, 1, other, "other users' notifications stay unread")
}

func TestLocal_PreferencesDefaultAndRoundTrip(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	prefs, err := p.Notifications.Preferences(ctx, "U-1")
	require.NoError(t, err)
	assert.Equal(t, "U-1", prefs.UserID)
	assert.True(t, prefs.Channels.Critical.Push)

	prefs.DndEnabled = true
	require.NoError(t, p.Notifications.SavePreferences(ctx, *prefs))

	got, err := p.Notifications.Preferences(ctx, "U-1")
	require.NoError(t, err)
	assert.True(t, got.DndEnabled)
}

func TestLocal_CurrentUserFallbackAndSwitch(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	cur, err := p.Users.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, "U-1", cur.ID, "no session falls back to the first user")

	switched, err := p.Users.Switch(ctx, "U-3")
	require.NoError(t, err)
	require.NotNil(t, switched)

	cur, err = p.Users.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "U-3", cur.ID)

	ghost, err := p.Users.Switch(ctx, "U-99")
	require.NoError(t, err)
	assert.Nil(t, ghost)
}

func TestLocal_AutomationToggle(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	rules, err := p.Automation.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, rules)
	require.True(t, rules[0].IsEnabled)

	toggled, err := p.Automation.Toggle(ctx, rules[0].ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsEnabled)

	again, err := p.Automation.Toggle(ctx, rules[0].ID)
	require.NoError(t, err)
	assert.True(t, again.IsEnabled)
}

func TestLocal_FieldDraftLifecycle(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	d1, err := p.FieldOps.SaveDraft(ctx, domain.FieldDraft{Title: "crack in wall"})
	require.NoError(t, err)
	assert.NotEmpty(t, d1.ID)

	d2, err := p.FieldOps.SaveDraft(ctx, domain.FieldDraft{Title: "missing guardrail"})
	require.NoError(t, err)

	drafts, err := p.FieldOps.Drafts(ctx)
	require.NoError(t, err)
	assert.Len(t, drafts, 2)

	require.NoError(t, p.FieldOps.RemoveDraft(ctx, d1.ID))
	drafts, err = p.FieldOps.Drafts(ctx)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, d2.ID, drafts[0].ID)

	require.NoError(t, p.FieldOps.ClearDrafts(ctx))
	drafts, err = p.FieldOps.Drafts(ctx)
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestLocal_BlueprintPinReplacement(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	bps, err := p.Documents.Blueprints(ctx, "P001")
	require.NoError(t, err)
	require.Len(t, bps, 1)
	require.Len(t, bps[0].Pins, 2)

	newPins := []domain.TaskPin{{ID: "p9", WorkItemID: "WI-1002", X: 10, Y: 20, Type: domain.TypeIncident, Priority: domain.PriorityHigh}}
	bp, err := p.Documents.SetPins(ctx, bps[0].ID, newPins)
	require.NoError(t, err)
	require.NotNil(t, bp)
	assert.Len(t, bp.Pins, 1, "pin set is replaced whole, not merged")
}

func TestLocal_RfiResponseRecorded(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	rfi, err := p.Stakeholders.CreateRfi(ctx, domain.Rfi{ProjectID: "P001", RfiNo: "RFI-001", Subject: "Rebar spacing"})
	require.NoError(t, err)
	assert.Equal(t, "Open", rfi.Status)

	answered, err := p.Stakeholders.UpdateRfiStatus(ctx, rfi.ID, "Answered", "Use 150mm spacing per drawing S-102.", "Consultant A")
	require.NoError(t, err)
	require.NotNil(t, answered)
	assert.Equal(t, "Answered", answered.Status)
	assert.Equal(t, "Consultant A", answered.RespondedBy)
	require.NotNil(t, answered.RespondedAt)
}

func TestLocal_StakeholderProjectScoping(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	_, err := p.Stakeholders.CreateChangeOrder(ctx, domain.ChangeOrder{ProjectID: "P001", Title: "Extra basement"})
	require.NoError(t, err)
	_, err = p.Stakeholders.CreateChangeOrder(ctx, domain.ChangeOrder{ProjectID: "P002", Title: "Road widening"})
	require.NoError(t, err)

	p1, err := p.Stakeholders.ChangeOrders(ctx, "P001")
	require.NoError(t, err)
	require.Len(t, p1, 1)
	assert.Equal(t, "Extra basement", p1[0].Title)

	permits, err := p.Stakeholders.Permits(ctx, "P001")
	require.NoError(t, err)
	assert.Len(t, permits, 2, "seeded permits belong to P001")

	lgs, err := p.Stakeholders.LettersOfGuarantee(ctx, "P001")
	require.NoError(t, err)
	assert.Len(t, lgs, 2)
}

func TestLocal_KnowledgeSearch(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	hits, err := p.Knowledge.Search(ctx, "concrete")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "KB-1", hits[0].ID)

	none, err := p.Knowledge.Search(ctx, "asphalt")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLocal_VendorCategoryFilter(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	cash, err := p.Vendors.ListByCategory(ctx, domain.VendorCash)
	require.NoError(t, err)
	assert.Empty(t, cash)

	agreement, err := p.Vendors.ListByCategory(ctx, domain.VendorAgreement)
	require.NoError(t, err)
	require.Len(t, agreement, 1)
	assert.Equal(t, "Saudi Readymix", agreement[0].Name)
}

func TestLocal_SeededDataSurvivesReopen(t *testing.T) {
	st := testutil.NewTestStore(t)
	sess := session.NewStore("")
	p := NewLocalProvider(st, sess, nil)
	ctx := context.Background()

	created, err := p.WorkItems.Create(ctx, testutil.WorkItemFixture("durable"))
	require.NoError(t, err)

	// Simulate an external invalidation; the next read reopens the store.
	st.Invalidate()

	got, err := p.WorkItems.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "durable", got.Title)
}
