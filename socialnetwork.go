package twitter

import (
	"cmp"
	"log/slog"
	"slices"
)

// Follows is one entry of a FollowsGraph: a user and the users they follow.
type Follows struct {
	User      string
	Followees UsernameSet
}

// FollowsGraph is a social network keyed by username. graph[k].Followees
// is the set of users that graph[k].User follows. Users never follow
// themselves, and a username appears at most once as a key and at most once
// in any followee set.
//
// Keys built by AddUser, Follow and GraphFromMap are folded usernames. A
// literal graph may use any spelling as key; the methods read User and
// Followees from the entries and never rely on the key's case.
type FollowsGraph map[string]Follows

// key returns the key holding user, or its folded form when user is absent.
func (g FollowsGraph) key(user string) (string, bool) {
	k := foldUsername(user)
	if _, ok := g[k]; ok {
		return k, true
	}
	for existing, f := range g {
		if EqualsUsername(existing, user) || EqualsUsername(f.User, user) {
			return existing, true
		}
	}
	return k, false
}

// AddUser makes sure user is a key of the graph, returning its entry.
// The first spelling added is kept.
func (g FollowsGraph) AddUser(user string) Follows {
	k, ok := g.key(user)
	f := g[k]
	if !ok || f.User == "" {
		f.User = user
	}
	if f.Followees == nil {
		f.Followees = make(UsernameSet)
	}
	g[k] = f
	return f
}

// Follow records that follower follows followee. Self-follows are ignored.
func (g FollowsGraph) Follow(follower, followee string) {
	f := g.AddUser(follower)
	if EqualsUsername(f.User, followee) {
		return
	}
	f.Followees.Add(followee)
}

// Followees returns the users that user follows, or an empty set when user
// is not a key. The returned set must not be modified.
func (g FollowsGraph) Followees(user string) UsernameSet {
	if k, ok := g.key(user); ok && g[k].Followees != nil {
		return g[k].Followees
	}
	return UsernameSet{}
}

// entries returns the graph's entries in case-insensitive user order.
func (g FollowsGraph) entries() []Follows {
	out := make([]Follows, 0, len(g))
	for k, f := range g {
		if f.User == "" {
			f.User = k
		}
		out = append(out, f)
	}
	slices.SortFunc(out, func(a, b Follows) int {
		if c := cmp.Compare(foldUsername(a.User), foldUsername(b.User)); c != 0 {
			return c
		}
		return cmp.Compare(a.User, b.User)
	})
	return out
}

// Users returns the user spellings in case-insensitive order.
func (g FollowsGraph) Users() []string {
	entries := g.entries()
	users := make([]string, len(entries))
	for i, f := range entries {
		users[i] = f.User
	}
	return users
}

// Len returns the number of keys.
func (g FollowsGraph) Len() int { return len(g) }

// Equal reports whether both graphs have the same users and followee sets,
// ignoring case and iteration order.
func (g FollowsGraph) Equal(other FollowsGraph) bool {
	if len(g) != len(other) {
		return false
	}
	for _, f := range g.entries() {
		k, ok := other.key(f.User)
		if !ok {
			return false
		}
		theirs := other[k].Followees
		if len(f.Followees) != len(theirs) || !f.Followees.ContainsAll(theirs) {
			return false
		}
	}
	return true
}

// Each calls fn for every user and their followees in case-insensitive user
// order. Followee sets are passed as sorted name slices.
func (g FollowsGraph) Each(fn func(user string, followees []string)) {
	for _, f := range g.entries() {
		fn(f.User, f.Followees.Names())
	}
}

// GraphFromMap builds a FollowsGraph from a map keyed by raw usernames.
// Keys that differ only in case are merged and self-follows dropped.
func GraphFromMap(m map[string][]string) FollowsGraph {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	g := make(FollowsGraph, len(m))
	for _, user := range keys {
		g.AddUser(user)
		for _, followee := range m[user] {
			g.Follow(user, followee)
		}
	}
	return g
}

// GuessFollowsGraph guesses who might follow whom from evidence in tweets.
//
// Ernie follows Bert if and only if Ernie authored a tweet that @-mentions
// Bert. Every author is a key, even one who mentions nobody. All usernames in
// the result are authors or mentions of tweets.
func GuessFollowsGraph(tweets []Tweet) FollowsGraph {
	g := make(FollowsGraph)
	for _, t := range tweets {
		if _, seen := g[foldUsername(t.Author)]; seen {
			continue
		}
		g.AddUser(t.Author)
		for _, mention := range MentionedUsers(WrittenBy(tweets, t.Author)) {
			g.Follow(t.Author, mention)
		}
	}
	slog.Debug("follows graph built", slog.Int("tweets", len(tweets)), slog.Int("users", len(g)))
	return g
}

// RankInfluencers returns every distinct username in g with its follower
// count, the number of keys whose followee set contains it. The result is
// sorted by descending follower count, ties broken by case-insensitive name.
func RankInfluencers(g FollowsGraph) []Influencer {
	counts := make(map[string]*Influencer)
	register := func(name string) *Influencer {
		k := foldUsername(name)
		in, ok := counts[k]
		if !ok {
			in = &Influencer{Username: name}
			counts[k] = in
		}
		return in
	}

	g.Each(func(user string, followees []string) {
		register(user)
		for _, followee := range followees {
			register(followee).Followers++
		}
	})

	ranking := make([]Influencer, 0, len(counts))
	for _, in := range counts {
		ranking = append(ranking, *in)
	}
	slices.SortFunc(ranking, func(a, b Influencer) int {
		if c := cmp.Compare(b.Followers, a.Followers); c != 0 {
			return c
		}
		return cmp.Compare(foldUsername(a.Username), foldUsername(b.Username))
	})
	return ranking
}

// Influencers returns every distinct username in g in descending order of
// follower count.
func Influencers(g FollowsGraph) []string {
	ranking := RankInfluencers(g)
	names := make([]string, len(ranking))
	for i, in := range ranking {
		names[i] = in.Username
	}
	return names
}
