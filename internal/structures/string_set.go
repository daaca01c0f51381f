package structures

type StringSet struct {
	set map[string]struct{}
}

func NewStringSet() *StringSet {
	return &StringSet{
		set: make(map[string]struct{}),
	}
}

func (stringSet *StringSet) Add(value string) {
	stringSet.set[value] = struct{}{}
}

func (stringSet *StringSet) Contains(value string) bool {
	_, exists := stringSet.set[value]
	return exists
}

func (stringSet *StringSet) Remove(value string) {
	delete(stringSet.set, value)
}

func (stringSet *StringSet) ToSlice() []string {
	result := make([]string, 0, len(stringSet.set))
	for key := range stringSet.set {
		result = append(result, key)
	}
	return result
}

func (stringSet *StringSet) Length() int {
	return len(stringSet.set)
}
