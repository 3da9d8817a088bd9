package notes

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

var datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// Entry is a dated note discovered outside the store, e.g. in a markdown file.
type Entry struct {
	Date time.Time
	Text string
}

type noteFrontmatter struct {
	Date  string `yaml:"date"`
	Title string `yaml:"title"`
}

// ScanMarkdown walks dir for .md files carrying a date, either in yaml
// frontmatter or in the filename, and returns one entry per file.
func ScanMarkdown(dir string) ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}
		if e, ok := parseMarkdownFile(path); ok {
			entries = append(entries, e)
		}
		return nil
	})
	return entries, err
}

func parseMarkdownFile(path string) (Entry, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, false
	}

	filename := filepath.Base(path)
	date, title, body := parseFrontmatter(content)

	if date.IsZero() {
		match := datePattern.FindString(filename)
		if match == "" {
			return Entry{}, false
		}
		parsed, err := ParseDate(match)
		if err != nil {
			return Entry{}, false
		}
		date = parsed
	}

	if title == "" {
		title = headingTitle(body)
	}
	if title == "" {
		title = titleFromFilename(filename)
	}
	return Entry{Date: date, Text: title}, true
}

// parseFrontmatter returns the frontmatter date and title plus the markdown
// body that follows it. Content without frontmatter is returned whole.
func parseFrontmatter(content []byte) (time.Time, string, []byte) {
	lines := bytes.Split(content, []byte("\n"))
	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return time.Time{}, "", content
	}

	var fmEnd int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			fmEnd = i
			break
		}
	}
	if fmEnd == 0 {
		return time.Time{}, "", content
	}
	body := bytes.Join(lines[fmEnd+1:], []byte("\n"))

	var fm noteFrontmatter
	if err := yaml.Unmarshal(bytes.Join(lines[1:fmEnd], []byte("\n")), &fm); err != nil {
		return time.Time{}, "", body
	}

	var date time.Time
	if fm.Date != "" {
		if parsed, err := ParseDate(fm.Date); err == nil {
			date = parsed
		}
	}
	return date, strings.TrimSpace(fm.Title), body
}

// headingTitle returns the text of the first level-1 heading in body.
func headingTitle(body []byte) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(body))

	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindHeading {
			if heading := n.(*ast.Heading); heading.Level == 1 {
				title = string(n.Text(body))
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(title)
}

func titleFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))

	// "2026-02-14-standup" -> "standup"
	if loc := datePattern.FindStringIndex(name); loc != nil {
		name = strings.TrimPrefix(name[loc[1]:], "-")
	}

	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	if strings.TrimSpace(name) == "" {
		return "Note"
	}
	return name
}

// Import appends entries that are not already present on their date and
// persists once. It returns the number of notes added.
func (s *Store) Import(entries []Entry) (int, error) {
	added := 0
	for _, e := range entries {
		if strings.TrimSpace(e.Text) == "" {
			continue
		}
		key := Key(e.Date)
		if containsNote(s.notes[key], e.Text) {
			continue
		}
		s.notes[key] = append(s.notes[key], e.Text)
		added++
	}
	if added == 0 {
		return 0, nil
	}
	return added, s.Persist()
}

func containsNote(list []string, note string) bool {
	for _, n := range list {
		if n == note {
			return true
		}
	}
	return false
}
