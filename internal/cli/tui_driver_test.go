package cli

import (
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/londonapp/internal/catalog"
	"github.com/alexanderramin/londonapp/internal/config"
	"github.com/alexanderramin/londonapp/internal/domain"
	"github.com/alexanderramin/londonapp/internal/links"
	"github.com/alexanderramin/londonapp/internal/teatest"
	"github.com/alexanderramin/londonapp/internal/testutil"
)

// fixedNow is 14:05 in London.
var fixedNow = time.Date(2025, 6, 1, 13, 5, 0, 0, time.UTC)

// testApp wires an App over the sample trip with fake weather.
func testApp(t *testing.T) *App {
	t.Helper()
	return &App{
		Loader:        testutil.StaticLoader{Trip: testutil.SampleTrip()},
		Weather:       &testutil.FakeWeather{Report: testutil.SunnyReport()},
		Catalog:       catalog.Default(),
		Palette:       domain.DefaultPalette,
		Providers:     links.DefaultProviders(),
		Config:        config.DefaultConfig(),
		Now:           func() time.Time { return fixedNow },
		IsInteractive: func() bool { return false },
	}
}

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

func stripANSI(s string) string { return ansiRe.ReplaceAllString(s, "") }

// TestDriver wraps teatest.Driver with inspection methods for appModel
// internals (view stack, shared state) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init()
// (which loads the trip synchronously from the static loader).
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// State returns the shared state.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Sheet returns the active sheet, failing the test if the top view is
// not a sheet.
func (d *TestDriver) Sheet() *sheetView {
	d.T.Helper()
	m := d.appModel()
	v, ok := m.activeView().(*sheetView)
	if !ok {
		d.T.Fatalf("active view is %v, not a sheet", d.ActiveViewID())
	}
	return v
}

// DayList returns the home view.
func (d *TestDriver) DayList() *dayListView {
	return d.appModel().viewStack[0].(*dayListView)
}

// OpenFirstDay presses enter on the first day card.
func (d *TestDriver) OpenFirstDay() {
	d.T.Helper()
	d.PressEnter()
	if d.ActiveViewID() != ViewSheet {
		d.T.Fatalf("expected sheet after enter, got %v", d.ViewStackIDs())
	}
}

// CursorToGroup moves the day list cursor onto group header gi,
// assuming no group is expanded.
func (d *TestDriver) CursorToGroup(gi int) {
	d.T.Helper()
	for range len(d.State().Days()) + gi {
		d.PressDown()
	}
}
