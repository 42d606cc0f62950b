// Package lifecycle drives the install and uninstall steps of the setup
// helper. The host installer engine owns file placement and binary removal;
// this controller reacts to the engine's step notifications and keeps the
// per-user state (data tree, admin config, install record) consistent.
package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	goversion "github.com/hashicorp/go-version"
	log "github.com/sirupsen/logrus"

	"github.com/techdeckio/setup/internal/adminconfig"
	"github.com/techdeckio/setup/internal/datadir"
	"github.com/techdeckio/setup/internal/installrecord"
	"github.com/techdeckio/setup/internal/retention"
)

// Step is the installer step the controller currently sits in. Step state is
// scoped to a single installer process invocation; install and uninstall run
// in separate process lifetimes.
type Step int

const (
	// StepStaging covers host-side file placement, no action taken here
	StepStaging Step = iota
	// StepPostInstall runs the per-user bootstrap sequence
	StepPostInstall
	// StepReady is the terminal step of a successful install
	StepReady
	// StepUninstallRequested blocks on the retention decision
	StepUninstallRequested
	// StepUninstallDecided executes the chosen retention branch
	StepUninstallDecided
	// StepUninstallComplete is the terminal step of a removal
	StepUninstallComplete
)

func (s Step) String() string {
	switch s {
	case StepStaging:
		return "staging"
	case StepPostInstall:
		return "post-install"
	case StepReady:
		return "ready"
	case StepUninstallRequested:
		return "uninstall-requested"
	case StepUninstallDecided:
		return "uninstall-decided"
	case StepUninstallComplete:
		return "uninstall-complete"
	default:
		return "unknown"
	}
}

// Controller orchestrates the data directory tree, the admin config store and
// the install record in response to host engine step notifications.
type Controller struct {
	dataRoot   string
	configFile string
	records    installrecord.Store
	prompter   retention.Prompter

	step     Step
	purgeErr error
}

// NewController builds a controller for the given data root.
func NewController(dataRoot string, records installrecord.Store, prompter retention.Prompter) *Controller {
	return &Controller{
		dataRoot:   dataRoot,
		configFile: datadir.ConfigFile(dataRoot),
		records:    records,
		prompter:   prompter,
		step:       StepStaging,
	}
}

// Step returns the step the controller currently sits in.
func (c *Controller) Step() Step {
	return c.step
}

// HandlePostInstall is invoked by the host engine once file placement is done.
// It ensures the data tree, bootstraps the admin config and writes the install
// record, in that order. Only when all three succeed does the controller reach
// StepReady; any failure aborts the step and is reported to the host. Every
// sub-step is idempotent, so a rerun after a partial earlier attempt is safe.
func (c *Controller) HandlePostInstall(ctx context.Context, installDir, appVersion string) error {
	c.step = StepPostInstall
	log.Infof("post-install step entered: install dir %s, version %s", installDir, appVersion)

	if err := datadir.EnsureTree(c.dataRoot); err != nil {
		return fmt.Errorf("ensure data tree %s: %w", c.dataRoot, err)
	}

	created, err := adminconfig.EnsureDefault(ctx, c.configFile)
	if err != nil {
		return fmt.Errorf("bootstrap admin config: %w", err)
	}

	record := &installrecord.Record{
		InstallPath: installDir,
		Version:     appVersion,
		DataPath:    c.dataRoot,
	}

	previous, err := c.records.Read()
	switch {
	case err == nil:
		record.InstallID = previous.InstallID
		c.logVersionChange(previous.Version, appVersion)
	case errors.Is(err, installrecord.ErrNotFound):
		log.Infof("no previous install record found, treating this as a fresh install")
	default:
		// an unreadable record does not block the install, the write below
		// replaces it anyway
		log.Warnf("failed to read previous install record: %v", err)
	}
	if record.InstallID == "" {
		record.InstallID = uuid.New().String()
	}

	if err := c.records.Write(record); err != nil {
		return fmt.Errorf("write install record: %w", err)
	}

	c.step = StepReady
	log.Infof("install bootstrap complete (admin config created: %t)", created)
	return nil
}

func (c *Controller) logVersionChange(previousRaw, currentRaw string) {
	previous, prevErr := goversion.NewSemver(previousRaw)
	current, currErr := goversion.NewSemver(currentRaw)
	if prevErr != nil || currErr != nil {
		log.Infof("reinstalling over previous version %q", previousRaw)
		return
	}

	switch {
	case current.GreaterThan(previous):
		log.Infof("upgrading from %s to %s", previous, current)
	case current.LessThan(previous):
		log.Warnf("downgrading from %s to %s", previous, current)
	default:
		log.Infof("reinstalling version %s", current)
	}
}

// HandleUninstall is invoked by the host engine before it removes the
// installed binaries. It blocks on the retention prompt and executes the
// chosen branch; the prompt wait is not cancellable, so the context is not
// consulted. A failed purge is reported through the acknowledgement but
// never blocks the host from completing binary removal, which is why the
// returned error stays nil in that case.
func (c *Controller) HandleUninstall(_ context.Context) (retention.Outcome, error) {
	c.step = StepUninstallRequested
	log.Infof("uninstall requested, resolving data retention for %s", c.dataRoot)

	outcome, err := c.prompter.ResolveRetention(c.dataRoot)
	if err != nil {
		// without an answer the data stays, the host proceeds regardless
		log.Errorf("failed to resolve retention decision, keeping user data: %v", err)
		outcome = retention.Kept
	}
	c.step = StepUninstallDecided
	log.Infof("retention decision: %s", outcome)

	if outcome == retention.Purged {
		if err := retention.Purge(c.dataRoot); err != nil {
			c.purgeErr = err
			log.Errorf("failed to remove user data: %v", err)
		} else if err := c.records.Delete(); err != nil {
			log.Warnf("failed to remove install record: %v", err)
		}
	}

	c.step = StepUninstallComplete
	return outcome, nil
}

// Acknowledgement returns the notice shown to the user after the retention
// decision has been executed.
func (c *Controller) Acknowledgement(outcome retention.Outcome) string {
	if outcome == retention.Kept {
		return fmt.Sprintf("Your TechDeck data in %s has been kept and will be reused if you reinstall.", c.dataRoot)
	}
	if c.purgeErr != nil {
		return fmt.Sprintf("Some TechDeck data in %s could not be removed: %v. The application itself has been uninstalled.", c.dataRoot, c.purgeErr)
	}
	return fmt.Sprintf("All TechDeck data in %s has been removed.", c.dataRoot)
}
