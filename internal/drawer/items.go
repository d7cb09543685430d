package drawer

// Routes the drawer links to.
const (
	RouteWelcome     = "/"
	RouteHome        = "/app/home"
	RouteCompetitive = "/app/competitive"
	RouteMatches     = "/app/status"
	RouteStore       = "/app/store"
	RouteDownloads   = "/app/downloads"
	RouteSettings    = "/app/settings"
	RouteDeveloper   = "/developer"
	RouteUpdate      = "/update"
)

// HelpURL is opened by the help entry.
const HelpURL = "https://discord.gg/6sNFtW4Hva"

// ActionKind says how an entry reacts to a tap.
type ActionKind int

const (
	ActionLink ActionKind = iota
	ActionFunc
)

// Action is what happens when an entry is tapped.
type Action struct {
	Kind ActionKind
	Href string
	Fn   func()
}

// Notification is a numeric badge.
type Notification struct {
	Count  int
	Colour string
}

// Badge returns a grey count badge, or nil when count is not positive.
func Badge(count int) *Notification {
	if count <= 0 {
		return nil
	}
	return &Notification{Count: count, Colour: "grey"}
}

// Entry is one drawer item. Icon is a Fyne theme icon name; Colour is an
// optional accent ("yellow", "blue").
type Entry struct {
	Label  string
	Icon   string
	Action Action
	Colour string
	Badge  *Notification
}

// Items are the entries pinned to the top and bottom of the drawer.
type Items struct {
	Top    []Entry
	Bottom []Entry
}

// Compact drops omitted (nil) candidates and keeps declaration order.
func Compact(candidates []*Entry) []Entry {
	out := make([]Entry, 0, len(candidates))
	for _, e := range candidates {
		if e != nil {
			out = append(out, *e)
		}
	}
	return out
}

// when returns e if cond holds and nil otherwise.
func when(cond bool, e Entry) *Entry {
	if !cond {
		return nil
	}
	return &e
}

// SessionCounter reports open game sessions.
type SessionCounter interface {
	SessionCount() int
}

// TransferCounter reports in-flight transfers.
type TransferCounter interface {
	ActiveCount() int
}

// Counts feed the drawer badges.
type Counts struct {
	Sessions  int
	Transfers int
}

// CountsFrom reads both collaborators; a nil collaborator counts zero.
func CountsFrom(s SessionCounter, t TransferCounter) Counts {
	var c Counts
	if s != nil {
		c.Sessions = s.SessionCount()
	}
	if t != nil {
		c.Transfers = t.ActiveCount()
	}
	return c
}

// Context is everything the projection depends on.
type Context struct {
	Authenticated   bool
	Developer       bool
	UpdateAvailable bool
	// Route is the current location, used to hide the drawer on the welcome
	// screen and to highlight the active entry.
	Route  string
	Counts Counts
	// OpenHelp is run by the help entry.
	OpenHelp func()
}

// Build lists the entries for ctx. Signed-in users get the full navigation;
// anonymous users get the welcome screen, help, and the conditional
// developer and update entries.
func Build(ctx Context) Items {
	help := Entry{Label: "Need Help?", Icon: "help", Action: Action{Kind: ActionFunc, Href: HelpURL, Fn: ctx.OpenHelp}}
	developer := Entry{Label: "Developer", Icon: "computer", Action: Action{Href: RouteDeveloper}}

	if !ctx.Authenticated {
		return Items{
			Top: Compact([]*Entry{
				{Label: "Welcome", Icon: "login", Action: Action{Href: RouteWelcome}},
				&help,
				when(ctx.Developer, developer),
				when(ctx.UpdateAvailable, Entry{Label: "Update", Icon: "viewRefresh", Action: Action{Href: RouteUpdate}}),
			}),
			Bottom: []Entry{},
		}
	}

	return Items{
		Top: Compact([]*Entry{
			{Label: "Home", Icon: "home", Action: Action{Href: RouteHome}},
			{Label: "Competitive", Icon: "grid", Action: Action{Href: RouteCompetitive}},
			{Label: "Matches", Icon: "mediaPlay", Action: Action{Href: RouteMatches}, Badge: Badge(ctx.Counts.Sessions)},
			{Label: "Donate", Icon: "confirm", Action: Action{Href: RouteStore}, Colour: "yellow"},
			&help,
		}),
		Bottom: Compact([]*Entry{
			when(ctx.UpdateAvailable, Entry{Label: "Update", Icon: "viewRefresh", Action: Action{Href: RouteUpdate}, Colour: "blue"}),
			when(ctx.Developer, developer),
			{Label: "Downloads", Icon: "download", Action: Action{Href: RouteDownloads}, Badge: Badge(ctx.Counts.Transfers)},
			{Label: "Settings", Icon: "settings", Action: Action{Href: RouteSettings}},
		}),
	}
}

// Hidden reports whether the drawer is omitted entirely: while an update is
// pending, on the welcome screen, and for anonymous users.
func Hidden(ctx Context) bool {
	return ctx.UpdateAvailable || ctx.Route == RouteWelcome || !ctx.Authenticated
}

// IsActive reports whether e links to route.
func IsActive(e Entry, route string) bool {
	return e.Action.Kind == ActionLink && e.Action.Href != "" && e.Action.Href == route
}
