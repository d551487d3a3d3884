package constants

// Fixed grade-level roster. Student class tags must come from this list.
var ClassOptions = []string{
	"nursery",
	"lkg",
	"ukg",
	"class1",
	"class2",
	"class3",
	"class4",
	"class5",
	"class6",
	"class7",
	"class8",
	"class9",
	"class10",
}

func IsValidClass(class string) bool {
	for _, c := range ClassOptions {
		if c == class {
			return true
		}
	}
	return false
}
