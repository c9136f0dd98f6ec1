package components

import (
	"strings"

	"clientctl/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Navbar is the top bar: brand, search box, add action and the signed-in
// user with a sign-out hint.
type Navbar struct {
	Title       string
	SearchView  string
	UserEmail   string
	ShowSpinner bool
	SpinnerView string
	Width       int
}

// NewNavbar creates a navbar
func NewNavbar(title string) *Navbar {
	return &Navbar{
		Title: title,
		Width: 80,
	}
}

// WithSearch sets the rendered search input
func (n *Navbar) WithSearch(view string) *Navbar {
	n.SearchView = view
	return n
}

// WithUser sets the signed-in user shown on the right
func (n *Navbar) WithUser(email string) *Navbar {
	n.UserEmail = email
	return n
}

// WithSpinner shows a spinner next to the title
func (n *Navbar) WithSpinner(spinnerView string) *Navbar {
	n.ShowSpinner = true
	n.SpinnerView = spinnerView
	return n
}

// WithWidth sets the navbar width
func (n *Navbar) WithWidth(width int) *Navbar {
	n.Width = width
	return n
}

// Render returns the styled navbar
func (n *Navbar) Render() string {
	var leftParts []string
	if n.ShowSpinner && n.SpinnerView != "" {
		leftParts = append(leftParts, n.SpinnerView)
	}
	leftParts = append(leftParts, design.BrandStyle.Render(n.Title))
	if n.SearchView != "" {
		leftParts = append(leftParts, n.SearchView)
	}
	leftParts = append(leftParts, design.DimStyle.Render("[a] Add Client"))
	leftContent := strings.Join(leftParts, "  ")

	var rightContent string
	if n.UserEmail != "" {
		rightContent = design.TextSecondaryStyle.Render(n.UserEmail) + "  " + design.DimStyle.Render("[ctrl+o] Sign out")
	}

	availableWidth := n.Width - design.SpaceSM*2
	content := leftContent
	if rightContent != "" {
		leftWidth := lipgloss.Width(leftContent)
		rightWidth := lipgloss.Width(rightContent)
		if leftWidth+rightWidth+2 <= availableWidth {
			content = leftContent + strings.Repeat(" ", availableWidth-leftWidth-rightWidth) + rightContent
		}
	}
	if lipgloss.Width(content) > availableWidth {
		// Content is already styled; cut it without breaking escape sequences.
		content = ansi.Truncate(content, availableWidth, "…")
	}

	return design.NavbarStyle.
		Width(n.Width).
		MaxWidth(n.Width).
		Render(content)
}
