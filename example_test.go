package yamlschema_test

import (
	"fmt"

	"gopkg.in/yaml.v3"

	yamlschema "github.com/yamlschema/yamlschema"
)

func ExampleValidator_Validate() {
	schema, _ := yamlschema.LoadSchema([]byte(`
type: object
properties:
  name: {type: string}
  port: {type: integer}
required: [name, port]
`))

	var doc yaml.Node
	_ = yaml.Unmarshal([]byte("name: app\nport: \"8080\"\n"), &doc)

	err := yamlschema.New().Validate(schema, &doc)
	fmt.Println(err)
	// Output: unexpected_value at /port: wanted integer, got quoted string
}

func ExampleResolve() {
	var doc yaml.Node
	_ = yaml.Unmarshal([]byte("spec:\n  replicas: 3\n"), &doc)

	n, _ := yamlschema.Resolve("/spec/replicas", &doc)
	fmt.Println(n.Value)
	// Output: 3
}
