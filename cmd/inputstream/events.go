package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/breeze-rmm/inputstream/internal/config"
	"github.com/breeze-rmm/inputstream/internal/logging"
	"github.com/breeze-rmm/inputstream/internal/privilege"
	"github.com/breeze-rmm/inputstream/internal/render"
	"github.com/breeze-rmm/inputstream/pkg/libinput"
)

var (
	eventsSeat     string
	eventsDevices  []string
	eventsGrab     bool
	eventsFormat   string
	eventsScreen   string
	eventsShowTime bool
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Print input events until interrupted",
	Example: `  inputstream events
  inputstream events --seat seat1 --format json
  inputstream events --device /dev/input/event3 --grab --show-time`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		applyEventFlags(cmd, cfg)
		validate(cfg)
		if rw := initLogging(cfg); rw != nil {
			defer rw.Close()
			go reopenOnHangup(rw)
		}

		if err := runEvents(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to stream events: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	f := eventsCmd.Flags()
	f.StringVar(&eventsSeat, "seat", "", "seat to assign the udev context to (default seat0)")
	f.StringSliceVar(&eventsDevices, "device", nil, "open only this device node (repeatable, selects the path backend)")
	f.BoolVar(&eventsGrab, "grab", false, "grab devices for exclusive access")
	f.StringVar(&eventsFormat, "format", "", "output format: text, json or yaml")
	f.StringVar(&eventsScreen, "screen", "", "also report absolute positions mapped onto WIDTHxHEIGHT")
	f.BoolVar(&eventsShowTime, "show-time", false, "print time relative to the first event (text format)")

	rootCmd.AddCommand(eventsCmd)
}

// applyEventFlags overrides config values with flags the user actually set.
func applyEventFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("seat") {
		cfg.Seat = eventsSeat
	}
	if f.Changed("device") {
		cfg.Backend = "path"
		cfg.Devices = eventsDevices
	}
	if f.Changed("grab") {
		cfg.Grab = eventsGrab
	}
	if f.Changed("format") {
		cfg.Format = eventsFormat
	}
	if f.Changed("screen") {
		cfg.Screen = eventsScreen
	}
	if f.Changed("show-time") {
		cfg.ShowTime = eventsShowTime
	}
}

func runEvents(cfg *config.Config) error {
	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	transform, err := config.ParseScreen(cfg.Screen)
	if err != nil {
		return err
	}

	if !privilege.CanReadDevices() {
		log.Warn("not root and not in the input group, devices will likely fail to open",
			"group", privilege.InputGroup)
	}

	opts := cfg.Options()
	access := privilege.NewDeviceAccess(opts.Grab)

	session, err := libinput.Open(opts.Seat, access, opts)
	if err != nil {
		return err
	}
	defer closeSession(session, access)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logging.NewContext(ctx, log.With(logging.KeySeat, session.Seat()))

	return stream(ctx, session, render.NewPrinter(os.Stdout, format, cfg.ShowTime), transform)
}

type deviceLister interface {
	OpenDevices() []string
}

// closeSession closes session and reports any device the native layer left
// open. It returns the paths still held.
func closeSession(session io.Closer, access deviceLister) []string {
	if err := session.Close(); err != nil {
		log.Warn("close session", logging.KeyError, err)
	}
	held := access.OpenDevices()
	if len(held) > 0 {
		log.Warn("devices still open after session close", "paths", held)
	}
	return held
}

func stream(ctx context.Context, session *libinput.Session, printer *render.Printer, transform libinput.Transform) error {
	logger := logging.FromContext(ctx)
	src := session.Events(
		libinput.WithContext(ctx),
		libinput.WithTransform(transform),
		libinput.WithLogger(logger),
	)
	defer src.Close()
	defer printer.Close()

	logger.Info("streaming events", logging.KeyFD, session.FD())
	for ev := range src.All() {
		if err := printer.Print(ev); err != nil {
			return fmt.Errorf("write event: %w", err)
		}
	}

	err := src.Err()
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted, shutting down")
		return nil
	}
	return err
}

func reopenOnHangup(rw *logging.RotatingWriter) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	for range hup {
		if err := rw.Reopen(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to reopen log file: %v\n", err)
		}
	}
}
