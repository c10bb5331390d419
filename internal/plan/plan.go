package plan

// Entry — один элемент плана: файл или каталог.
// Path — относительный путь от базового каталога, сегменты через "/".
type Entry struct {
	Path string
	Dir  bool
}

// Plan — имя корня и упорядоченный список элементов.
// Каталог всегда идёт раньше любого элемента, вложенного в него.
type Plan struct {
	Root    string
	Entries []Entry
}
