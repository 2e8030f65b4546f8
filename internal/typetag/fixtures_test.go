package typetag

// Class hierarchy shared across the package tests. Declared in init so
// the builtin classes (assigned in class.go's init, which runs first)
// are available as bases; package-level var initializers would run
// before any init function and see a nil Object.
var (
	employee        *Class
	manager         *Class
	founder         *Class
	managingFounder *Class
)

func init() {
	employee = MustNewClass("Employee")
	manager = MustNewClass("Manager", employee)
	founder = MustNewClass("Founder", employee)
	managingFounder = MustNewClass("ManagingFounder", manager, founder)
}
