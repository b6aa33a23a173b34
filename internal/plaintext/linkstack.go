package plaintext

import "strings"

// linkStackItem tracks one open hyperlink. An empty href means the link is
// internal or unrecognized and its inner text passes through untouched.
type linkStackItem struct {
	href  string
	title strings.Builder
}

// linkStack is the LIFO of open links. Nested links do not occur in valid
// markdown, but the stack discipline keeps close tokens paired with their
// opens regardless.
type linkStack struct {
	items []*linkStackItem
}

// isExternalURL reports whether href is a tracked http(s) URL.
func isExternalURL(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}

// push opens a link. Only external http(s) hrefs are tracked; anything else
// pushes an untracked entry so the matching pop stays balanced.
func (s *linkStack) push(href string) {
	it := &linkStackItem{}
	if isExternalURL(href) {
		it.href = href
	}
	s.items = append(s.items, it)
}

func (s *linkStack) pop() *linkStackItem {
	if len(s.items) == 0 {
		return nil
	}
	it := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return it
}

// top returns the innermost open link, or nil.
func (s *linkStack) top() *linkStackItem {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}
