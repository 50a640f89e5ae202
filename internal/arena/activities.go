// Package arena holds the Practice Arena: starter HTML/CSS/JS snippets,
// a preview document for running them and helpers to ask a model about them.
package arena

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownActivity is returned for activity names outside Activities()
var ErrUnknownActivity = errors.New("unknown practice activity")

// Activity is one exercise with its starter code
type Activity struct {
	Name    string
	Starter string
}

var activities = []Activity{
	{
		Name: "Basic HTML Page",
		Starter: `
<!DOCTYPE html>
<html>
  <body>
    <h1>Welcome!</h1>
    <p>This is a basic HTML page.</p>
  </body>
</html>
`,
	},
	{
		Name: "CSS Styling Example",
		Starter: `
<!DOCTYPE html>
<html>
  <head>
    <style>
      p { color: blue; font-size: 20px; }
    </style>
  </head>
  <body>
    <p>This paragraph is styled with CSS!</p>
  </body>
</html>
`,
	},
	{
		Name: "Simple JS Alert",
		Starter: `
<!DOCTYPE html>
<html>
  <body>
    <h2>Click the button for a message</h2>
    <button onclick="alert('Hello from JavaScript!')">Click Me</button>
  </body>
</html>
`,
	},
	{
		Name: "Interactive Button",
		Starter: `
<!DOCTYPE html>
<html>
  <body>
    <button onclick="document.getElementById('demo').innerHTML='You clicked me!'">Click me</button>
    <p id="demo"></p>
  </body>
</html>
`,
	},
}

// Activities lists the exercises in display order
func Activities() []Activity {
	out := make([]Activity, len(activities))
	copy(out, activities)
	return out
}

// Starter returns the starter code of the named activity
func Starter(name string) (string, error) {
	for _, a := range activities {
		if strings.EqualFold(a.Name, strings.TrimSpace(name)) {
			return a.Starter, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownActivity)
}
