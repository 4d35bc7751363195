package scraping

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const employerPage = `<html><body>
<h3>Acme Robotics</h3>
<h1>Fall Career Fair</h1>
<dl>
  <dt>Industry</dt><dd>Robotics</dd>
  <dt>Website</dt><dd>https://acme.example.com</dd>
  <dt>Position Types</dt><dd>Internship, Full-Time</dd>
  <dt>Majors Recruited</dt><dd>Computer Science, Computer Engineering</dd>
  <dt>Desired Class Years</dt><dd>Junior, Senior</dd>
  <dt>Booth Location</dt><dd>A12</dd>
  <dt>Recruiter Email</dt><dd>jobs@acme.example.com</dd>
</dl>
<h2>About Us</h2>
<p>Acme builds autonomous warehouse robots.</p>
<p>Founded in 2015.</p>
<div class="list-border"></div>
<h2>We Are Looking For</h2>
<p>Software engineers with Go experience.</p>
<h2>Organization Profile</h2>
<div>
  <p>Employees: 450</p>
  <p>Headquarters: Austin, TX</p>
  <p>A privately held company.</p>
</div>
<h2>Contact Information</h2>
<p>Email: recruiting@acme.example.com</p>
</body></html>`

func TestBuildProfileEmployerPage(t *testing.T) {
	profile, err := BuildProfile(employerPage, "https://fair.example.com/employers/acme")
	require.NoError(t, err)

	assert.Equal(t, "https://fair.example.com/employers/acme", profile.URL)
	assert.False(t, profile.ScrapedAt.IsZero())

	// h3 outranks h1 in the selector preference list.
	assert.Equal(t, "Acme Robotics", profile.CompanyName)

	assert.Equal(t, "Acme builds autonomous warehouse robots.\nFounded in 2015.", profile.About)
	assert.Equal(t, "Software engineers with Go experience.", profile.WeAreLookingFor)

	require.NotNil(t, profile.OrganizationProfile)
	assert.Equal(t, "450", profile.OrganizationProfile["Employees"])
	assert.Equal(t, "Austin, TX", profile.OrganizationProfile["Headquarters"])
	assert.Equal(t, "A privately held company.", profile.OrganizationProfile["content"])

	require.NotNil(t, profile.ContactInfo)
	assert.Equal(t, "recruiting@acme.example.com", profile.ContactInfo["Email"])
	assert.Equal(t, "jobs@acme.example.com", profile.ContactInfo["recruiter email"])

	assert.Equal(t, "Robotics", profile.Industry)
	assert.Equal(t, "https://acme.example.com", profile.Website)
	assert.Equal(t, []string{"Internship", "Full-Time"}, profile.PositionTypes)
	assert.Equal(t, []string{"Computer Science", "Computer Engineering"}, profile.MajorsRecruited)
	assert.Equal(t, []string{"Junior", "Senior"}, profile.DesiredClassYears)
	assert.Equal(t, "A12", profile.BoothLocation)

	assert.Len(t, profile.AllSections, 4)
	assert.Contains(t, profile.AllTextContent, "Acme Robotics")
	assert.Contains(t, profile.AllTextContent, "Founded in 2015.")
}

func TestBuildProfileSectionStopsAtDivider(t *testing.T) {
	profile, err := BuildProfile(employerPage, "https://fair.example.com/employers/acme")
	require.NoError(t, err)

	// Content collection for About Us stops at the list-border divider,
	// so the next section's text never bleeds in.
	assert.NotContains(t, profile.About, "Software engineers")
}

func TestBuildProfileAlternativeContainers(t *testing.T) {
	page := `<html><body>
	<div class="info-card"><h3>About</h3><p>We make things.</p></div>
	<div class="side-panel"><h4>Hiring</h4><p>Interns welcome.</p></div>
	</body></html>`

	profile, err := BuildProfile(page, "https://fair.example.com/employers/x")
	require.NoError(t, err)

	// No h2 headings on the page, so sections come from the container
	// fallback.
	assert.Equal(t, "We make things.", profile.AllSections["About"])
	assert.Equal(t, "Interns welcome.", profile.AllSections["Hiring"])
	assert.Equal(t, "We make things.", profile.About)
}

func TestBuildProfileParentSiblingFallback(t *testing.T) {
	// The heading is wrapped in its own element, so content lives next
	// to the wrapper rather than next to the heading.
	page := `<html><body>
	<h2>First</h2><p>one</p>
	<h2>Second</h2><p>two</p>
	<div><h2>About Us</h2></div>
	<p>Wrapped heading content.</p>
	</body></html>`

	profile, err := BuildProfile(page, "https://fair.example.com/employers/y")
	require.NoError(t, err)
	assert.Equal(t, "Wrapped heading content.", profile.About)
}

func TestBuildProfileEmptyPage(t *testing.T) {
	profile, err := BuildProfile("", "https://fair.example.com/employers/empty")
	require.Error(t, err)

	var scrapeErr *ScrapeError
	require.True(t, errors.As(err, &scrapeErr))
	assert.Equal(t, "https://fair.example.com/employers/empty", scrapeErr.URL)

	// The partial profile still comes back with its envelope filled in.
	require.NotNil(t, profile)
	assert.Equal(t, "https://fair.example.com/employers/empty", profile.URL)
}

func TestParseProfileSection(t *testing.T) {
	profile := parseProfileSection("Industry: Robotics\nJust a sentence.\nWebsite: https://acme.example.com")
	assert.Equal(t, "Robotics", profile["Industry"])
	assert.Equal(t, "https://acme.example.com", profile["Website"])
	assert.Equal(t, "Just a sentence.", profile["content"])

	assert.Empty(t, parseProfileSection(""))
}

func TestParseListField(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, parseListField("A, B"))
	assert.Equal(t, []string{"A", "B"}, parseListField("A\nB"))
	assert.Equal(t, []string{"Single"}, parseListField(" Single "))
	assert.Nil(t, parseListField(""))
}

func TestBlockText(t *testing.T) {
	page := `<html><body><div>first<br>second</div><script>var x = 1;</script><p>third</p></body></html>`
	profile, err := BuildProfile(page, "https://fair.example.com/employers/z")
	require.Error(t, err) // no headings and no sections
	assert.Equal(t, "first\nsecond\nthird", profile.AllTextContent)
}
