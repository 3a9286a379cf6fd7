// Package menu drives the interactive prompt loop. Every choice performs at
// most one network call and drops back to the menu, whatever happened.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/travelmcp/travelmcp/internal/client"
	"github.com/travelmcp/travelmcp/internal/format"
)

type Menu struct {
	client *client.Client
	in     *bufio.Scanner
	out    io.Writer
}

func New(c *client.Client, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		client: c,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run loops until the user exits or input is exhausted.
func (m *Menu) Run(ctx context.Context) {
	for ctx.Err() == nil {
		m.printMenu()
		choice, ok := m.prompt("\nEnter your choice (1-7): ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.flightSearch(ctx)
		case "2":
			m.hotelSearch(ctx)
		case "3":
			m.restaurantSearch(ctx)
		case "4":
			m.attractionSearch(ctx)
		case "5":
			m.videoSearch(ctx)
		case "6":
			m.listTools(ctx)
		case "7":
			fmt.Fprintln(m.out, "Goodbye!")
			return
		default:
			ancli.PrintWarn(fmt.Sprintf("invalid choice: %q, please enter 1-7\n", choice))
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprint(m.out, `
============================================================
Travel & Content Search
============================================================
1. Flight search
2. Hotel search
3. Restaurant search
4. Attraction search
5. Video search
6. List available tools
7. Exit
============================================================
`)
}

// prompt writes label and reads one trimmed line. ok is false once input is
// exhausted.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptRequired aborts the current operation on empty input, so that no
// request is ever sent with a missing required field.
func (m *Menu) promptRequired(label string) (string, bool) {
	value, ok := m.prompt(label)
	if !ok {
		return "", false
	}
	if value == "" {
		ancli.PrintWarn("required field left empty, returning to menu\n")
		return "", false
	}
	return value, true
}

func (m *Menu) flightSearch(ctx context.Context) {
	fmt.Fprintln(m.out, "\nFlight search")
	departure, ok := m.promptRequired("Departure city/airport: ")
	if !ok {
		return
	}
	arrival, ok := m.promptRequired("Arrival city/airport: ")
	if !ok {
		return
	}
	date, ok := m.promptRequired("Date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	fmt.Fprintf(m.out, "\nSearching flights from %s to %s on %s...\n", departure, arrival, date)
	resp := m.client.SearchFlights(ctx, departure, arrival, date)
	fmt.Fprint(m.out, format.Render(resp, "Flight"))
}

func (m *Menu) hotelSearch(ctx context.Context) {
	fmt.Fprintln(m.out, "\nHotel search")
	location, ok := m.promptRequired("Location: ")
	if !ok {
		return
	}
	checkIn, ok := m.promptRequired("Check-in date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	checkOut, ok := m.promptRequired("Check-out date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	adultsInput, ok := m.prompt("Number of adults (default: 2): ")
	if !ok {
		return
	}
	adults := 2
	if n, err := strconv.Atoi(adultsInput); err == nil && n > 0 {
		adults = n
	}

	fmt.Fprintf(m.out, "\nSearching hotels in %s for %d adults...\n", location, adults)
	resp := m.client.SearchHotels(ctx, location, checkIn, checkOut, adults)
	fmt.Fprint(m.out, format.Render(resp, "Hotel"))
}

func (m *Menu) restaurantSearch(ctx context.Context) {
	fmt.Fprintln(m.out, "\nRestaurant search")
	location, ok := m.promptRequired("Location: ")
	if !ok {
		return
	}
	cuisine, ok := m.prompt("Cuisine (optional): ")
	if !ok {
		return
	}

	fmt.Fprintf(m.out, "\nSearching restaurants in %s...\n", location)
	resp := m.client.SearchRestaurants(ctx, location, cuisine)
	fmt.Fprint(m.out, format.Render(resp, "Restaurant"))
}

func (m *Menu) attractionSearch(ctx context.Context) {
	fmt.Fprintln(m.out, "\nAttraction search")
	location, ok := m.promptRequired("Location: ")
	if !ok {
		return
	}
	category, ok := m.prompt("Category (optional, e.g. museums, parks, tours): ")
	if !ok {
		return
	}

	fmt.Fprintf(m.out, "\nSearching attractions in %s...\n", location)
	resp := m.client.SearchAttractions(ctx, location, category)
	fmt.Fprint(m.out, format.Render(resp, "Attraction"))
}

func (m *Menu) videoSearch(ctx context.Context) {
	fmt.Fprintln(m.out, "\nVideo search")
	query, ok := m.promptRequired("Search query: ")
	if !ok {
		return
	}

	fmt.Fprintln(m.out, "\nOptional filters:")
	duration, ok := m.prompt("Duration (short/medium/long): ")
	if !ok {
		return
	}
	uploadDate, ok := m.prompt("Upload date (hour/today/week/month/year): ")
	if !ok {
		return
	}
	sortBy, ok := m.prompt("Sort by (relevance/upload_date/view_count/rating): ")
	if !ok {
		return
	}
	maxInput, ok := m.prompt("Max results (1-50, default: 20): ")
	if !ok {
		return
	}
	maxResults := 20
	if n, err := strconv.Atoi(maxInput); err == nil && n >= 1 && n <= 50 {
		maxResults = n
	}

	fmt.Fprintf(m.out, "\nSearching videos for %q...\n", query)
	resp := m.client.SearchVideos(ctx, query, client.VideoOptions{
		Duration:   oneOf(duration, "short", "medium", "long"),
		UploadDate: oneOf(uploadDate, "hour", "today", "week", "month", "year"),
		SortBy:     oneOf(sortBy, "relevance", "upload_date", "view_count", "rating"),
		MaxResults: maxResults,
	})
	fmt.Fprint(m.out, format.Render(resp, "Video"))
}

func (m *Menu) listTools(ctx context.Context) {
	resp := m.client.ListTools(ctx)
	fmt.Fprint(m.out, "\n"+format.RenderTools(resp))
}

// oneOf keeps value only when it is one of the allowed filter settings.
// Anything else is dropped rather than sent to the server.
func oneOf(value string, allowed ...string) string {
	for _, a := range allowed {
		if value == a {
			return value
		}
	}
	return ""
}
