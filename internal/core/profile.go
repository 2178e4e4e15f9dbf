package core

import (
	"context"

	"gaschecker/internal/farcaster"
)

// ProfileByUsername looks the user up directly on the social graph.
// A record without an fid is treated as a miss.
func (c *Checker) ProfileByUsername(ctx context.Context, username string) (Profile, bool) {
	user, err := c.up.SocialGraph.UserByUsername(ctx, username)
	if err != nil {
		c.lookupFailed("profile by username lookup failed", err, "username", username)
		return Profile{}, false
	}
	if user.FID == 0 {
		return Profile{}, false
	}

	return profileFromUser(user), true
}

func (c *Checker) ProfileByFID(ctx context.Context, fid uint64) (Profile, bool) {
	user, err := c.up.SocialGraph.UserByFID(ctx, fid)
	if err != nil {
		c.lookupFailed("profile by fid lookup failed", err, "fid", fid)
		return Profile{}, false
	}

	return profileFromUser(user), true
}

func profileFromUser(user farcaster.User) Profile {
	return Profile{
		FID:         user.FID,
		DisplayName: optional(user.DisplayName),
		PfpURL:      optional(user.AvatarURL()),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
