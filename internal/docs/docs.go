// Package docs holds the built-in help topics shown by `ghostconfig docs`
// and the API index page.
package docs

import (
        "embed"
        "io/fs"
        "path"
        "sort"
        "strings"
)

//go:embed content/*.md
var contentFS embed.FS

const topicDir = "content"

// Topics lists the help topics in name order.
func Topics() []string {
        entries, err := fs.ReadDir(contentFS, topicDir)
        if err != nil {
                return nil
        }
        topics := make([]string, 0, len(entries))
        for _, e := range entries {
                if topic, ok := strings.CutSuffix(e.Name(), ".md"); ok && !e.IsDir() {
                        topics = append(topics, topic)
                }
        }
        sort.Strings(topics)
        return topics
}

// Get returns the markdown for topic. Topic names are bare words such as
// "api" or "editor"; anything that looks like a path is not a topic.
func Get(topic string) (string, bool) {
        topic = strings.ToLower(strings.TrimSpace(topic))
        if topic == "" || strings.ContainsAny(topic, "/\\.") {
                return "", false
        }
        b, err := contentFS.ReadFile(path.Join(topicDir, topic+".md"))
        if err != nil {
                return "", false
        }
        return string(b), true
}
