// Package reactor is a fine-grained reactivity runtime: observable
// values and computed values that track their own dependencies at read
// time, reactions that automatically rerun when something they read
// changes, and an Administration for giving an arbitrary Go value a set
// of named reactive properties.
//
// # Basic usage
//
//	name := reactor.NewObservable("name", "Ada")
//	greeting := reactor.NewComputed("greeting", func() string {
//		return "Hello, " + name.Get()
//	})
//
//	stop := reactor.Autorun("print-greeting", func(ctx *reactor.ReactionCtx) error {
//		fmt.Println(greeting.Get())
//		return nil
//	})
//	defer stop()
//
//	name.Set("Grace") // reruns the autorun, printing "Hello, Grace"
//
// # Batching
//
// Multiple writes inside a reactor.Batch only trigger affected reactions
// once, after the batch closes:
//
//	reactor.Batch(func() {
//		name.Set("Alan")
//		name.Set("Turing")
//	})
//
// # Administration
//
// Manage gives a plain Go value a set of named observable/computed
// properties, addressed by name rather than by struct field, since Go
// has no property-descriptor mechanism to hook into:
//
//	type Person struct{ ID string }
//	p := &Person{ID: "1"}
//	admin := reactor.Manage(p)
//	admin.AddObservableProp("firstName", "Ada", nil, nil)
//	admin.AddComputedProp("label", func() (any, error) {
//		v, _ := admin.Read("firstName")
//		return v, nil
//	})
//
// # Extensions
//
// An Extension observes or wraps every reaction run and every
// administration write, composed around each other in registration
// order: register one with reactor.Use.
package reactor
