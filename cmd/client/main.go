package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/spf13/cobra"
	"github.com/travelmcp/travelmcp/internal/client"
	"github.com/travelmcp/travelmcp/internal/config"
	"github.com/travelmcp/travelmcp/internal/detection"
	"github.com/travelmcp/travelmcp/internal/format"
	"github.com/travelmcp/travelmcp/internal/menu"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "travelmcp",
		Short:         "Interactive client for the travel & content search MCP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run:           runInteractive,
	}
	rootCmd.AddCommand(
		flightsCmd(),
		hotelsCmd(),
		restaurantsCmd(),
		attractionsCmd(),
		videosCmd(),
		toolsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newClient() *client.Client {
	cfg := config.NewConfig()

	var engine *detection.Engine
	if cfg.ScanSecrets {
		var err error
		if cfg.GitleaksConfig != "" {
			engine, err = detection.NewEngineFromConfig(cfg.GitleaksConfig)
		} else {
			engine, err = detection.NewEngine()
		}
		if err != nil {
			log.Fatalf("Failed to create detection engine: %v", err)
		}
	}

	return client.New(cfg, engine)
}

func runInteractive(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := newClient()

	fmt.Println("Travel & Content Search client")
	fmt.Println("Connecting to server...")

	tools := c.ListTools(ctx)
	if tools.Error != nil {
		ancli.PrintErr(fmt.Sprintf("failed to connect to server: %s\n", tools.Error.Error()))
		ancli.PrintWarn("make sure the MCP server is running, or point TRAVELMCP_SERVER_URL at it\n")
		return
	}
	ancli.PrintOK("connected\n")

	done := make(chan struct{})
	go func() {
		menu.New(c, os.Stdin, os.Stdout).Run(ctx)
		close(done)
	}()

	// Block until the menu exits or the user interrupts
	select {
	case <-done:
	case <-ctx.Done():
		fmt.Println("\nGoodbye!")
	}
}

func flightsCmd() *cobra.Command {
	var from, to, date string
	cmd := &cobra.Command{
		Use:   "flights",
		Short: "One-shot flight search",
		RunE: func(cmd *cobra.Command, args []string) error {
			if from == "" || to == "" || date == "" {
				return fmt.Errorf("--from, --to and --date are required")
			}
			resp := newClient().SearchFlights(cmd.Context(), from, to, date)
			fmt.Print(format.Render(resp, "Flight"))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "departure city or airport")
	cmd.Flags().StringVar(&to, "to", "", "arrival city or airport")
	cmd.Flags().StringVar(&date, "date", "", "departure date (YYYY-MM-DD)")
	return cmd
}

func hotelsCmd() *cobra.Command {
	var location, checkIn, checkOut string
	var adults int
	cmd := &cobra.Command{
		Use:   "hotels",
		Short: "One-shot hotel search",
		RunE: func(cmd *cobra.Command, args []string) error {
			if location == "" || checkIn == "" || checkOut == "" {
				return fmt.Errorf("--location, --check-in and --check-out are required")
			}
			resp := newClient().SearchHotels(cmd.Context(), location, checkIn, checkOut, adults)
			fmt.Print(format.Render(resp, "Hotel"))
			return nil
		},
	}
	cmd.Flags().StringVar(&location, "location", "", "location to search in")
	cmd.Flags().StringVar(&checkIn, "check-in", "", "check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&checkOut, "check-out", "", "check-out date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&adults, "adults", 2, "number of adults")
	return cmd
}

func restaurantsCmd() *cobra.Command {
	var location, cuisine string
	cmd := &cobra.Command{
		Use:   "restaurants",
		Short: "One-shot restaurant search",
		RunE: func(cmd *cobra.Command, args []string) error {
			if location == "" {
				return fmt.Errorf("--location is required")
			}
			resp := newClient().SearchRestaurants(cmd.Context(), location, cuisine)
			fmt.Print(format.Render(resp, "Restaurant"))
			return nil
		},
	}
	cmd.Flags().StringVar(&location, "location", "", "location to search in")
	cmd.Flags().StringVar(&cuisine, "cuisine", "", "optional cuisine filter")
	return cmd
}

func attractionsCmd() *cobra.Command {
	var location, category string
	cmd := &cobra.Command{
		Use:   "attractions",
		Short: "One-shot attraction search",
		RunE: func(cmd *cobra.Command, args []string) error {
			if location == "" {
				return fmt.Errorf("--location is required")
			}
			resp := newClient().SearchAttractions(cmd.Context(), location, category)
			fmt.Print(format.Render(resp, "Attraction"))
			return nil
		},
	}
	cmd.Flags().StringVar(&location, "location", "", "location to search in")
	cmd.Flags().StringVar(&category, "category", "", "optional category filter (e.g. museums, parks, tours)")
	return cmd
}

func videosCmd() *cobra.Command {
	var query string
	var opts client.VideoOptions
	cmd := &cobra.Command{
		Use:   "videos",
		Short: "One-shot YouTube video search",
		RunE: func(cmd *cobra.Command, args []string) error {
			if query == "" {
				return fmt.Errorf("--query is required")
			}
			resp := newClient().SearchVideos(cmd.Context(), query, opts)
			fmt.Print(format.Render(resp, "Video"))
			return nil
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "search query")
	cmd.Flags().StringVar(&opts.Duration, "duration", "", "optional duration filter (short, medium, long)")
	cmd.Flags().StringVar(&opts.UploadDate, "upload-date", "", "optional upload date filter (hour, today, week, month, year)")
	cmd.Flags().StringVar(&opts.SortBy, "sort", "", "optional sort order (relevance, upload_date, view_count, rating)")
	cmd.Flags().IntVar(&opts.MaxResults, "max-results", 20, "maximum number of results (1-50)")
	return cmd
}

func toolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the server's available tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := newClient().ListTools(cmd.Context())
			fmt.Print(format.RenderTools(resp))
			return nil
		},
	}
}
