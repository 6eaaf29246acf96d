package fixturekit_test

import (
	"fmt"

	"github.com/dmitrymomot/fixturekit"
	"github.com/dmitrymomot/fixturekit/pkg/rules"
)

func ExampleBuilder() {
	user, err := fixturekit.New().
		Field("id").Increment(1, 1).
		Set("name", "Ada").
		Set("email", func(obj fixturekit.Object) any {
			return fmt.Sprintf("%v@example.com", obj["name"])
		}).
		BuildOne()
	if err != nil {
		panic(err)
	}

	fmt.Println("id:", user["id"])
	fmt.Println("name:", user["name"])
	fmt.Println("email:", user["email"])

	// Output:
	// id: 1
	// name: Ada
	// email: Ada@example.com
}

func ExampleBuilder_Repeat() {
	users, err := fixturekit.New().
		Field("id").Increment(100, 1).
		Set("role", "member").
		Repeat(3).
		BuildList()
	if err != nil {
		panic(err)
	}

	for _, u := range users {
		fmt.Printf("%v %v\n", u["id"], u["role"])
	}

	// Output:
	// 100 member
	// 101 member
	// 102 member
}

func ExampleBuilder_Validate() {
	// Validation is opt-in; builds run the attached rules only when
	// asked to.
	_, err := fixturekit.New().
		Set("email", "not-an-address").
		Validate("email", rules.Email()).
		SkipValidation(false).
		Build()

	fmt.Println(err)

	// Output:
	// must be a valid email address
}

func ExampleRegistry() {
	registry := fixturekit.NewRegistry()
	registry.Define("admin", fixturekit.Template{
		"role":   "admin",
		"active": true,
	})

	admin, err := fixturekit.New().
		UseRegistry(registry).
		Preset("admin").
		Set("name", "Grace").
		BuildOne()
	if err != nil {
		panic(err)
	}

	fmt.Println("name:", admin["name"])
	fmt.Println("role:", admin["role"])
	fmt.Println("active:", admin["active"])

	// Output:
	// name: Grace
	// role: admin
	// active: true
}
