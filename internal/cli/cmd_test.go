package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/enjaz/internal/core"
	"github.com/alexanderramin/enjaz/internal/domain"
	"github.com/alexanderramin/enjaz/internal/repository"
	"github.com/alexanderramin/enjaz/internal/session"
	"github.com/alexanderramin/enjaz/internal/testutil"
)

// testApp wires a full App backed by the seeded local provider.
func testApp(t *testing.T) *App {
	t.Helper()
	provider := repository.NewLocalProvider(testutil.NewTestStore(t), session.NewStore(""), nil)
	return &App{
		Provider:   provider,
		Aggregator: core.NewAggregator(provider),
	}
}

// runCmd executes the root command with args and captures its output.
func runCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestWorkList_ShowsSeededItems(t *testing.T) {
	app := testApp(t)

	out, err := runCmd(t, app, "work", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "WI-1001")
	assert.Contains(t, out, "Pending Approval")
}

func TestWorkList_ProjectFilter(t *testing.T) {
	app := testApp(t)

	out, err := runCmd(t, app, "work", "list", "--project", "P002")
	require.NoError(t, err)
	assert.Contains(t, out, "WI-1002")
	assert.NotContains(t, out, "WI-1001")
}

func TestWorkCreateAndStatus(t *testing.T) {
	app := testApp(t)

	out, err := runCmd(t, app, "work", "create", "--title", "Check drainage pumps", "--project", "P001")
	require.NoError(t, err)
	assert.Contains(t, out, "Created WI-")

	list, err := runCmd(t, app, "work", "list")
	require.NoError(t, err)
	assert.Contains(t, list, "Check drainage pumps")

	out, err = runCmd(t, app, "work", "status", "WI-1003", "Done")
	require.NoError(t, err)
	assert.Contains(t, out, "WI-1003 is now Done")
}

func TestWorkStatus_RejectsUnknownValue(t *testing.T) {
	app := testApp(t)

	_, err := runCmd(t, app, "work", "status", "WI-1003", "Bogus")
	require.Error(t, err)
}

func TestWorkCreate_RequiresTitleAndProject(t *testing.T) {
	app := testApp(t)

	_, err := runCmd(t, app, "work", "create", "--title", "orphan")
	require.Error(t, err)
}

func TestWorkApprove_ResolvesChain(t *testing.T) {
	app := testApp(t)

	// WI-1001 ships with AS-1 approved; approving the remaining two steps
	// resolves the whole case.
	out, err := runCmd(t, app, "work", "approve", "WI-1001", "AS-2")
	require.NoError(t, err)
	assert.Contains(t, out, "Pending Approval")

	out, err = runCmd(t, app, "work", "approve", "WI-1001", "AS-3")
	require.NoError(t, err)
	assert.Contains(t, out, "item is Approved")
}

func TestMaterialAdjustAndMovements(t *testing.T) {
	app := testApp(t)

	out, err := runCmd(t, app, "material", "adjust", "MAT-1", "40", "--out", "--note", "issued to P001")
	require.NoError(t, err)
	assert.Contains(t, out, "now 300")

	out, err = runCmd(t, app, "material", "movements", "MAT-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Outbound")
	assert.Contains(t, out, "issued to P001")
}

func TestMaterialAdjust_RejectsBadQuantity(t *testing.T) {
	app := testApp(t)

	_, err := runCmd(t, app, "material", "adjust", "MAT-1", "-5")
	require.Error(t, err)
}

func TestUserSwitchChangesCurrent(t *testing.T) {
	app := testApp(t)

	out, err := runCmd(t, app, "user", "current")
	require.NoError(t, err)
	assert.Contains(t, out, "U-1")

	out, err = runCmd(t, app, "user", "switch", "U-3")
	require.NoError(t, err)
	assert.Contains(t, out, "Fahad")

	out, err = runCmd(t, app, "user", "current")
	require.NoError(t, err)
	assert.Contains(t, out, "U-3")
}

func TestNotifyReadAll(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	_, err := app.Provider.Notifications.Create(ctx, domain.Notification{
		UserID:   "U-1",
		Title:    "Approval needed",
		Message:  "WI-1001 is waiting on you",
		Type:     "approval",
		Priority: domain.NotifHigh,
		Category: domain.CategoryApproval,
	})
	require.NoError(t, err)

	out, err := runCmd(t, app, "notify", "list", "--unread")
	require.NoError(t, err)
	assert.Contains(t, out, "Approval needed")

	out, err = runCmd(t, app, "notify", "read-all")
	require.NoError(t, err)
	assert.Contains(t, out, "U-1")

	out, err = runCmd(t, app, "notify", "list", "--unread")
	require.NoError(t, err)
	assert.NotContains(t, out, "Approval needed")
}

func TestNotifyPrefs_ToggleDnd(t *testing.T) {
	app := testApp(t)

	out, err := runCmd(t, app, "notify", "prefs", "--dnd")
	require.NoError(t, err)
	assert.Contains(t, out, "do not disturb: true")

	out, err = runCmd(t, app, "notify", "prefs")
	require.NoError(t, err)
	assert.Contains(t, out, "do not disturb: true", "preference persists across invocations")
}

func TestSnapshotCommand(t *testing.T) {
	app := testApp(t)

	out, err := runCmd(t, app, "snapshot")
	require.NoError(t, err)
	assert.Contains(t, out, "Current user: Khalid Al-Omari (U-1)")
	assert.Contains(t, out, "Al Narjis Residential Towers")
	assert.Contains(t, out, "WI-1001")
	assert.Contains(t, out, "notifications")
}
