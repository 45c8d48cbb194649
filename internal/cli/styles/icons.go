package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher
	IconArrow     = "\uf061" // arrow right
	IconCursor    = "\uf054" // chevron-right
	IconWindow    = "\uf2d2" // window
	IconTab       = "\uf0ce" // table
	IconMarked    = "\uf00c" // check
)
