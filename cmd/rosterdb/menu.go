package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/rosterdb"
	"github.com/hupe1980/rosterdb/sample"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

type menuAction string

const (
	actionAdd     menuAction = "add"
	actionGet     menuAction = "get"
	actionSearch  menuAction = "search"
	actionSort    menuAction = "sort"
	actionList    menuAction = "list"
	actionAverage menuAction = "average"
	actionTop     menuAction = "top"
	actionFilter  menuAction = "filter"
	actionRemove  menuAction = "remove"
	actionSeed    menuAction = "seed"
	actionStats   menuAction = "stats"
	actionQuit    menuAction = "quit"
)

type menu struct {
	store    *rosterdb.Store
	registry *prometheus.Registry
	nextSeed int64
	nextBase int64
}

func newMenu(store *rosterdb.Store, registry *prometheus.Registry) *menu {
	return &menu{
		store:    store,
		registry: registry,
		nextSeed: 1,
		// Skip past any records seeded at startup.
		nextBase: 1000 + int64(store.Len()),
	}
}

func (m *menu) run() error {
	fmt.Println(titleStyle.Render("Student Records System"))

	for {
		var choice menuAction

		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[menuAction]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("Add student", actionAdd),
					huh.NewOption("Search by ID", actionGet),
					huh.NewOption("Search by name", actionSearch),
					huh.NewOption("Sort by GPA", actionSort),
					huh.NewOption("Display all", actionList),
					huh.NewOption("Average GPA", actionAverage),
					huh.NewOption("Top students", actionTop),
					huh.NewOption("Filter by major", actionFilter),
					huh.NewOption("Remove student", actionRemove),
					huh.NewOption("Generate sample data", actionSeed),
					huh.NewOption("Performance statistics", actionStats),
					huh.NewOption("Quit", actionQuit),
				).
				Value(&choice),
		))

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		if choice == actionQuit {
			return nil
		}

		if err := m.dispatch(choice); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			return err
		}
	}
}

func (m *menu) dispatch(choice menuAction) error {
	switch choice {
	case actionAdd:
		return m.handleAdd()
	case actionGet:
		return m.handleGet()
	case actionSearch:
		return m.handleSearch()
	case actionSort:
		m.printRecords(m.store.SortedByGPA())
	case actionList:
		m.handleList()
	case actionAverage:
		m.handleAverage()
	case actionTop:
		return m.handleTop()
	case actionFilter:
		return m.handleFilter()
	case actionRemove:
		return m.handleRemove()
	case actionSeed:
		return m.handleSeed()
	case actionStats:
		return m.handleStats()
	}
	return nil
}

func (m *menu) handleAdd() error {
	var (
		idText  string
		name    string
		gpaText string
		major   string
	)

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Student ID").Validate(validateID).Value(&idText),
		huh.NewInput().Title("Name").Validate(validateNonEmpty).Value(&name),
		huh.NewInput().Title("GPA (0.0-4.0)").Validate(validateGPA).Value(&gpaText),
		huh.NewInput().Title("Major").Validate(validateNonEmpty).Value(&major),
	))

	if err := form.Run(); err != nil {
		return err
	}

	id, _ := strconv.ParseInt(strings.TrimSpace(idText), 10, 64)
	gpa, _ := strconv.ParseFloat(strings.TrimSpace(gpaText), 64)

	rec := rosterdb.Record{ID: id, Name: name, GPA: gpa, Major: major}
	if err := m.store.Insert(rec); err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return nil
	}

	fmt.Println("Student added successfully!")
	return nil
}

func (m *menu) handleGet() error {
	id, err := m.promptID("Student ID")
	if err != nil {
		return err
	}

	rec, ok := m.store.Get(id)
	if !ok {
		fmt.Println(noticeStyle.Render("Student not found"))
		return nil
	}

	fmt.Println(formatRecord(rec))
	return nil
}

func (m *menu) handleSearch() error {
	var query string

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name to search").Validate(validateNonEmpty).Value(&query),
	))
	if err := form.Run(); err != nil {
		return err
	}

	results := m.store.SearchByName(query)
	fmt.Printf("Found %d students:\n", len(results))
	m.printRecords(results)
	return nil
}

func (m *menu) handleList() {
	if m.store.Len() == 0 {
		fmt.Println(noticeStyle.Render("No students in system"))
		return
	}
	for rec := range m.store.All() {
		fmt.Println(formatRecord(rec))
	}
}

func (m *menu) handleAverage() {
	if m.store.Len() == 0 {
		fmt.Println(noticeStyle.Render("No students in system"))
		return
	}
	fmt.Printf("Average GPA: %.2f\n", m.store.AverageGPA())
}

func (m *menu) handleTop() error {
	n, err := m.promptPositiveInt("How many top students?")
	if err != nil {
		return err
	}

	fmt.Printf("Top %d students:\n", n)
	m.printRecords(m.store.TopK(n))
	return nil
}

func (m *menu) handleFilter() error {
	var major string

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Major").Validate(validateNonEmpty).Value(&major),
	))
	if err := form.Run(); err != nil {
		return err
	}

	results := m.store.FilterByMajor(major)
	fmt.Printf("Found %d students in %s:\n", len(results), major)
	m.printRecords(results)
	return nil
}

func (m *menu) handleRemove() error {
	id, err := m.promptID("Student ID")
	if err != nil {
		return err
	}

	if m.store.Remove(id) {
		fmt.Println("Student removed")
	} else {
		fmt.Println(noticeStyle.Render("Student not found"))
	}
	return nil
}

func (m *menu) handleSeed() error {
	n, err := m.promptPositiveInt("How many sample records?")
	if err != nil {
		return err
	}

	// Duplicate IDs from earlier seeding or manual adds are skipped
	// inside Generate, so a stale base only lowers the inserted count.
	inserted, err := sample.Generate(m.store, n,
		sample.WithSeed(m.nextSeed),
		sample.WithBaseID(m.nextBase),
	)
	if err != nil {
		return err
	}
	m.nextSeed++
	m.nextBase += int64(n)

	fmt.Printf("Generated %d sample records\n", inserted)
	return nil
}

func (m *menu) handleStats() error {
	stats := m.store.Stats()

	fmt.Println(titleStyle.Render("Performance Statistics"))
	fmt.Printf("Total students:   %d\n", stats.Records)
	fmt.Printf("Insert ops:       %d\n", stats.Inserts)
	fmt.Printf("Lookup ops:       %d\n", stats.Lookups)
	fmt.Printf("Sort ops:         %d\n", stats.Sorts)
	fmt.Printf("Last lookup time: %v\n", stats.LastLookup)
	fmt.Printf("Last sort time:   %v\n", stats.LastSort)
	fmt.Printf("Last top-k time:  %v\n", stats.LastTopK)

	if m.registry != nil {
		families, err := m.registry.Gather()
		if err != nil {
			return err
		}
		fmt.Println(titleStyle.Render("Prometheus Metrics"))
		for _, mf := range families {
			for _, metric := range mf.GetMetric() {
				switch {
				case metric.GetCounter() != nil:
					fmt.Printf("%s %g\n", mf.GetName(), metric.GetCounter().GetValue())
				case metric.GetHistogram() != nil:
					fmt.Printf("%s count=%d sum=%g\n", mf.GetName(),
						metric.GetHistogram().GetSampleCount(), metric.GetHistogram().GetSampleSum())
				}
			}
		}
	}
	return nil
}

func (m *menu) promptID(title string) (int64, error) {
	var text string

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title(title).Validate(validateID).Value(&text),
	))
	if err := form.Run(); err != nil {
		return 0, err
	}

	return strconv.ParseInt(strings.TrimSpace(text), 10, 64)
}

func (m *menu) promptPositiveInt(title string) (int, error) {
	var text string

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title(title).Validate(validatePositiveInt).Value(&text),
	))
	if err := form.Run(); err != nil {
		return 0, err
	}

	return strconv.Atoi(strings.TrimSpace(text))
}

func (m *menu) printRecords(recs []rosterdb.Record) {
	if len(recs) == 0 {
		fmt.Println(noticeStyle.Render("(none)"))
		return
	}
	for _, rec := range recs {
		fmt.Println(formatRecord(rec))
	}
}

func formatRecord(rec rosterdb.Record) string {
	return fmt.Sprintf("%d | %s | GPA: %.2f | %s", rec.ID, rec.Name, rec.GPA, rec.Major)
}

func validateID(s string) error {
	if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
		return errors.New("please enter a valid number")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("please enter a valid number")
	}
	if n < 1 {
		return errors.New("value must be at least 1")
	}
	return nil
}

func validateGPA(s string) error {
	gpa, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("please enter a valid number")
	}
	if gpa < rosterdb.MinGPA || gpa > rosterdb.MaxGPA {
		return fmt.Errorf("gpa must be between %.1f and %.1f", rosterdb.MinGPA, rosterdb.MaxGPA)
	}
	return nil
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("input cannot be empty")
	}
	return nil
}
