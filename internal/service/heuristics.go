package service

import "strings"

// The inline classifier is a static rule table evaluated in order, so
// the productive-before-unproductive tie-break stays explicit: an app
// name matching both sets resolves productive.
type hintRule struct {
	keywords     []string
	isProductive bool
	confidence   float64
}

var hintRules = []hintRule{
	{
		keywords: []string{
			"vscode", "vs code", "code", "terminal", "git", "python", "node",
			"intellij", "pycharm", "notion", "figma", "photoshop", "word",
			"excel", "powerpoint",
		},
		isProductive: true,
		confidence:   0.6,
	},
	{
		keywords: []string{
			"youtube", "tiktok", "twitter", "facebook", "instagram", "reddit",
			"netflix", "discord", "tinder", "snapchat",
		},
		isProductive: false,
		confidence:   0.6,
	},
}

// resolveByHints matches appName (case-insensitive substring) against the
// rule table. Nil verdict with zero confidence means no rule matched.
func resolveByHints(appName string) (*bool, float64) {
	name := strings.ToLower(appName)
	for _, rule := range hintRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				verdict := rule.isProductive
				return &verdict, rule.confidence
			}
		}
	}
	return nil, 0
}
