package jobs

import (
	"context"
	"log"
	"strings"
	"time"

	"lostfound-hub/storage"
	"lostfound-hub/store"

	"github.com/robfig/cron/v3"
)

// Cleaner removes profile photos that no user references anymore. Uploads
// are written before the avatar field is updated, so a crash or a rejected
// user update can leave orphans behind.
type Cleaner struct {
	users    store.UserStore
	uploader storage.Uploader
	maxAge   time.Duration
}

func NewCleaner(users store.UserStore, uploader storage.Uploader, maxAge time.Duration) *Cleaner {
	return &Cleaner{users: users, uploader: uploader, maxAge: maxAge}
}

// Schedule registers a nightly run on the given cron.
func (cl *Cleaner) Schedule(c *cron.Cron) error {
	_, err := c.AddFunc("@daily", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := cl.Run(ctx); err != nil {
			log.Printf("upload cleanup failed: %v", err)
		}
	})
	return err
}

// Run performs one sweep: list stored objects, keep everything a user's
// avatar still points at, remove the rest once old enough.
func (cl *Cleaner) Run(ctx context.Context) error {
	objects, err := cl.uploader.List(ctx)
	if err != nil {
		return err
	}
	users, err := cl.users.List(ctx)
	if err != nil {
		return err
	}

	referenced := map[string]bool{}
	for _, u := range users {
		if u.Avatar == "" {
			continue
		}
		parts := strings.Split(u.Avatar, "/")
		referenced[parts[len(parts)-1]] = true
	}

	for _, name := range SelectOrphans(objects, referenced, time.Now().Add(-cl.maxAge)) {
		if err := cl.uploader.Remove(ctx, name); err != nil {
			log.Printf("failed to remove orphaned upload %s: %v", name, err)
			continue
		}
		log.Printf("removed orphaned upload %s", name)
	}
	return nil
}

// SelectOrphans picks the profile uploads that are unreferenced and were
// last touched before the cutoff. Files outside the profile- naming scheme
// are left alone.
func SelectOrphans(objects []storage.Object, referenced map[string]bool, cutoff time.Time) []string {
	orphans := []string{}
	for _, o := range objects {
		if !strings.HasPrefix(o.Name, "profile-") {
			continue
		}
		if referenced[o.Name] {
			continue
		}
		if o.Updated.After(cutoff) {
			continue
		}
		orphans = append(orphans, o.Name)
	}
	return orphans
}
