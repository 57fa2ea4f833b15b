package expander_test

import (
	"fmt"
	"log"

	"github.com/erraggy/oasexpand/document"
	"github.com/erraggy/oasexpand/expander"
)

func ExampleExpandWithOptions() {
	spec := `
openapi: "3.0.3"
paths:
  /pets:
    get:
      responses:
        "200":
          schema:
            $ref: "#/components/schemas/Pet"
components:
  schemas:
    Pet:
      type: object
`
	doc, err := document.Parse([]byte(spec), document.FormatYAML, "example")
	if err != nil {
		log.Fatal(err)
	}

	result, err := expander.ExpandWithOptions(expander.WithDocument(doc))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("resolved: %d\n", result.Stats.RefsResolved)
	fmt.Printf("components pruned: %t\n", result.ComponentsPruned)
	// Output:
	// resolved: 1
	// components pruned: true
}

func ExampleExpander_Expand() {
	spec := `
schema:
  $ref: "#/components/schemas/Missing"
components: {}
`
	doc, err := document.Parse([]byte(spec), document.FormatYAML, "example")
	if err != nil {
		log.Fatal(err)
	}

	e := expander.New()
	result := e.Expand(doc)

	fmt.Printf("placeholders: %d\n", result.Stats.Placeholders())
	// Output:
	// placeholders: 1
}
