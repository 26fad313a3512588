package format

import (
        "encoding/json"
        "fmt"
        "io"
        "sort"
        "strconv"
        "strings"
)

// WriteText writes v as plain "path: value" lines for reading in a shell.
//
// The value goes through JSON first so struct tags decide the field names.
// An envelope's "data" is unwrapped and "_hints" are printed last with a
// "# " prefix.
func WriteText(w io.Writer, v any) error {
        b, err := json.Marshal(v)
        if err != nil {
                return err
        }
        var x any
        if err := json.Unmarshal(b, &x); err != nil {
                return err
        }

        var hints []any
        if m, ok := x.(map[string]any); ok {
                if data, ok := m["data"]; ok {
                        if h, ok := m["_hints"].([]any); ok {
                                hints = h
                        }
                        x = data
                }
        }

        var sb strings.Builder
        writeTextValue(&sb, "", x)
        for _, h := range hints {
                sb.WriteString("# ")
                sb.WriteString(textScalar(h))
                sb.WriteByte('\n')
        }
        _, err = io.WriteString(w, sb.String())
        return err
}

func writeTextValue(sb *strings.Builder, path string, v any) {
        switch x := v.(type) {
        case map[string]any:
                if len(x) == 0 {
                        writeTextLine(sb, path, "{}")
                        return
                }
                keys := make([]string, 0, len(x))
                for k := range x {
                        keys = append(keys, k)
                }
                sort.Strings(keys)
                for _, k := range keys {
                        writeTextValue(sb, joinPath(path, k), x[k])
                }
        case []any:
                if len(x) == 0 {
                        writeTextLine(sb, path, "[]")
                        return
                }
                for i, item := range x {
                        switch item.(type) {
                        case map[string]any, []any:
                                writeTextValue(sb, joinPath(path, strconv.Itoa(i)), item)
                        default:
                                // Lists of scalars print one per line.
                                writeTextLine(sb, path, textScalar(item))
                        }
                }
        default:
                writeTextLine(sb, path, textScalar(x))
        }
}

func writeTextLine(sb *strings.Builder, path, value string) {
        if path != "" {
                sb.WriteString(path)
                sb.WriteString(": ")
        }
        sb.WriteString(value)
        sb.WriteByte('\n')
}

func joinPath(prefix, k string) string {
        if prefix == "" {
                return k
        }
        return prefix + "." + k
}

func textScalar(v any) string {
        switch x := v.(type) {
        case nil:
                return ""
        case string:
                return x
        case bool:
                return strconv.FormatBool(x)
        case float64:
                return strconv.FormatFloat(x, 'f', -1, 64)
        default:
                return fmt.Sprint(x)
        }
}
