// Package identity resolves user/group specifiers into the scan.Identity
// the evaluator works with.
package identity

import (
	"fmt"
	"os/user"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/axscan/pkg/scan"
)

// Resolved is a constructed identity plus the username it resolved from,
// when one exists. Username is empty for a uid with no passwd entry.
type Resolved struct {
	Identity scan.Identity
	Username string
}

// Resolve builds the identity to evaluate access as.
//
// An empty userSpec means the invoking user, with that user's group list.
// Otherwise userSpec is tried as a name first, then as a numeric id
// (base-0, so "0x3e8" works); a token that is neither is fatal. A numeric
// uid with no passwd entry is admitted with a warning and an empty group
// list.
//
// groupSpec is a comma-separated list of extra groups, each a name or a
// numeric id with the same fallback; a numeric gid with no group entry is
// admitted with a warning. Extra groups are appended in the order given.
func Resolve(userSpec, groupSpec string, logger hclog.Logger) (Resolved, error) {
	res, gids, err := resolveUser(userSpec, logger)
	if err != nil {
		return Resolved{}, err
	}

	extra, err := resolveGroups(groupSpec, logger)
	if err != nil {
		return Resolved{}, err
	}
	gids = append(gids, extra...)

	res.Identity = scan.NewIdentity(res.Identity.UID(), gids)
	return res, nil
}

func resolveUser(spec string, logger hclog.Logger) (Resolved, []uint32, error) {
	if spec == "" {
		u, err := user.Current()
		if err != nil {
			return Resolved{}, nil, fmt.Errorf("unable to determine current user: %w", err)
		}
		return resolvedFromUser(u, logger)
	}

	u, err := user.Lookup(spec)
	if err != nil {
		// Not a known name; try it as a number.
		uid, perr := parseID(spec)
		if perr != nil {
			return Resolved{}, nil, fmt.Errorf("%w: %q", ErrInvalidUser, spec)
		}
		u, err = user.LookupId(strconv.FormatUint(uint64(uid), 10))
		if err != nil {
			logger.Warn("unable to find uid, evaluating it anyway",
				"uid", uid, "error", err)
			anon := Resolved{Identity: scan.NewIdentity(uid, nil)}
			return anon, nil, nil
		}
	}
	return resolvedFromUser(u, logger)
}

// resolvedFromUser builds a Resolved from a passwd entry, pulling in the
// user's full group list with the primary gid guaranteed present.
func resolvedFromUser(u *user.User, logger hclog.Logger) (Resolved, []uint32, error) {
	uid, err := parseID(u.Uid)
	if err != nil {
		return Resolved{}, nil, fmt.Errorf("unparseable uid %q for user %s: %w", u.Uid, u.Username, err)
	}

	var gids []uint32
	if primary, err := parseID(u.Gid); err == nil {
		gids = append(gids, primary)
	}

	groups, err := u.GroupIds()
	if err != nil {
		logger.Warn("unable to enumerate group memberships, using primary group only",
			"user", u.Username, "error", err)
	}
	for _, g := range groups {
		gid, err := parseID(g)
		if err != nil {
			continue
		}
		gids = append(gids, gid)
	}

	res := Resolved{
		Identity: scan.NewIdentity(uid, gids),
		Username: u.Username,
	}
	return res, gids, nil
}

func resolveGroups(spec string, logger hclog.Logger) ([]uint32, error) {
	if spec == "" {
		return nil, nil
	}

	var gids []uint32
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		g, err := user.LookupGroup(token)
		if err != nil {
			gid, perr := parseID(token)
			if perr != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidGroup, token)
			}
			g, err = user.LookupGroupId(strconv.FormatUint(uint64(gid), 10))
			if err != nil {
				// Warning only: the numeric gid is still usable.
				logger.Warn("unable to find gid, evaluating it anyway",
					"gid", gid, "error", err)
				gids = append(gids, gid)
				continue
			}
		}

		gid, err := parseID(g.Gid)
		if err != nil {
			return nil, fmt.Errorf("unparseable gid %q for group %s: %w", g.Gid, g.Name, err)
		}
		gids = append(gids, gid)
	}
	return gids, nil
}

// parseID parses a numeric id, accepting the bases strtol(3) with base 0
// would: decimal, 0-prefixed octal, 0x-prefixed hex.
func parseID(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
