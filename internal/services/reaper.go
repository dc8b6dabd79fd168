package services

import (
	"errors"
	"sync"
	"time"

	"curio/internal/config"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Reaper periodically executes account deletions whose grace period has
// elapsed. One sweep runs at a time.
type Reaper struct {
	accountService AccountService
	logService     LogService
	configuration  *config.Configuration
	sweeping       bool
	mutex          sync.Mutex
	cron           *cron.Cron
}

func NewReaper(
	accountService AccountService,
	logService LogService,
	configuration *config.Configuration,
) *Reaper {
	return &Reaper{
		accountService: accountService,
		logService:     logService,
		configuration:  configuration,
		cron:           cron.New(),
	}
}

// StartSweepCycle registers the cron schedule and starts the background
// sweeps.
func (r *Reaper) StartSweepCycle() {
	schedule := r.configuration.Deletion.SweepSchedule
	_, err := r.cron.AddFunc(schedule, func() {
		r.mutex.Lock()
		if r.sweeping {
			r.mutex.Unlock()
			return
		}
		r.sweeping = true
		r.mutex.Unlock()

		defer func() {
			r.mutex.Lock()
			r.sweeping = false
			r.mutex.Unlock()
		}()
		r.sweep(false)
	})
	if err != nil {
		r.logService.Log.WithFields(logrus.Fields{
			"job":   "account-deletion",
			"error": err.Error(),
		}).Error("Failed to start deletion sweep")
		return
	}
	r.cron.Start()
}

// ForceSweep runs one sweep immediately, refusing if one is in progress.
func (r *Reaper) ForceSweep() error {
	r.mutex.Lock()
	if r.sweeping {
		r.mutex.Unlock()
		return errors.New("sweep is in progress")
	}
	r.sweeping = true
	r.mutex.Unlock()

	defer func() {
		r.mutex.Lock()
		r.sweeping = false
		r.mutex.Unlock()
	}()
	r.sweep(true)
	return nil
}

func (r *Reaper) Stop() {
	r.cron.Stop()
	r.logService.Log.WithFields(logrus.Fields{
		"job":    "account-deletion",
		"status": "stopped",
	}).Info("Deletion sweep stopped")
}

func (r *Reaper) IsSweeping() bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.sweeping
}

func (r *Reaper) sweep(forced bool) {
	executed, err := r.accountService.ExecuteDue(time.Now())
	if err != nil {
		r.logService.Log.WithFields(logrus.Fields{
			"job":    "account-deletion",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to execute due deletions")
		return
	}
	if executed > 0 {
		fields := logrus.Fields{
			"job":    "account-deletion",
			"status": "success",
			"count":  executed,
		}
		if forced {
			fields["status"] = "forced"
		}
		r.logService.Log.WithFields(fields).Info("Deletion sweep finished")
	}
}
