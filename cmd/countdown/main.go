// Command countdown follows a shared timer in the terminal:
//
//	countdown -api http://localhost:8080 -share <share_id>
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/VihaFernando/TickTocker/internal/countdown"
	"github.com/VihaFernando/TickTocker/internal/dto"
)

var errNotFound = errors.New("shared timer not found")

func main() {
	apiURL := flag.String("api", "http://localhost:8080", "API base URL")
	shareID := flag.String("share", "", "share id of the timer")
	flag.Parse()
	if *shareID == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := &http.Client{Timeout: 10 * time.Second}
	if err := run(ctx, client, os.Stdout, *apiURL, *shareID, countdown.RunOptions{StopWhenPast: true}); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("countdown: %v", err)
	}
}

func run(ctx context.Context, client *http.Client, out io.Writer, apiURL, shareID string, opts countdown.RunOptions) error {
	t, err := fetchShared(ctx, client, apiURL, shareID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s (%s)\n", t.EventName, t.EventDate.Local().Format("Mon, 02 Jan 2006 15:04 MST"))

	err = countdown.Run(ctx, t.EventDate, opts, func(r countdown.Remaining) {
		fmt.Fprintf(out, "\r%-20s", r.String())
	})
	fmt.Fprintln(out)
	return err
}

func fetchShared(ctx context.Context, client *http.Client, apiURL, shareID string) (dto.PublicTimerResponse, error) {
	var t dto.PublicTimerResponse
	endpoint := strings.TrimRight(apiURL, "/") + "/api/v1/share/" + url.PathEscape(shareID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return t, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return t, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return t, errNotFound
	default:
		var e dto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return t, fmt.Errorf("GET %s: %s %s", endpoint, resp.Status, e.Error)
	}
	if err := json.NewDecoder(resp.Body).Decode(&t); err != nil {
		return t, fmt.Errorf("decode shared timer: %w", err)
	}
	return t, nil
}
