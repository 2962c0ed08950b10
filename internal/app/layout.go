package app

import "github.com/chmouel/lazyhg/internal/panel"

const (
	layoutMargin = 1

	leftColumnPercent = 40
	statusRowPercent  = 60
	branchRowPercent  = 20

	footerHeight = 1
)

// region is a rectangle in terminal cells. X and Y are relative to the top
// left corner of the window.
type region struct {
	X, Y          int
	Width, Height int
}

func (r region) empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// layoutSpec partitions the window into one region per panel, plus an
// optional footer line. It is recomputed from the window size every frame.
type layoutSpec struct {
	width  int
	height int

	status    region
	branches  region
	bookmarks region
	log       region
	footer    region
}

// computeLayout splits the window, inside a one cell margin, into a 40/60
// column pair. The left column stacks Status, Branches and Bookmarks at
// 60/20/20 of the height; Log fills the right column.
func computeLayout(width, height int, showFooter bool) layoutSpec {
	l := layoutSpec{width: maxInt(width, 0), height: maxInt(height, 0)}

	innerX := layoutMargin
	innerY := layoutMargin
	innerWidth := maxInt(l.width-2*layoutMargin, 0)
	innerHeight := maxInt(l.height-2*layoutMargin, 0)

	bodyHeight := innerHeight
	if showFooter && innerHeight > footerHeight {
		bodyHeight = innerHeight - footerHeight
		l.footer = region{X: innerX, Y: innerY + bodyHeight, Width: innerWidth, Height: footerHeight}
	}

	leftWidth := innerWidth * leftColumnPercent / 100
	rightWidth := innerWidth - leftWidth

	statusHeight := bodyHeight * statusRowPercent / 100
	branchesHeight := bodyHeight * branchRowPercent / 100
	bookmarksHeight := bodyHeight - statusHeight - branchesHeight

	l.status = region{X: innerX, Y: innerY, Width: leftWidth, Height: statusHeight}
	l.branches = region{X: innerX, Y: innerY + statusHeight, Width: leftWidth, Height: branchesHeight}
	l.bookmarks = region{X: innerX, Y: innerY + statusHeight + branchesHeight, Width: leftWidth, Height: bookmarksHeight}
	l.log = region{X: innerX + leftWidth, Y: innerY, Width: rightWidth, Height: bodyHeight}
	return l
}

// regionFor returns the region assigned to id.
func (l layoutSpec) regionFor(id panel.ID) region {
	switch id {
	case panel.Status:
		return l.status
	case panel.Branches:
		return l.branches
	case panel.Bookmarks:
		return l.bookmarks
	case panel.Log:
		return l.log
	default:
		return region{}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
