package fragment

// Wrap returns prefix+item+suffix, or "" when item is empty.
func Wrap(prefix, suffix, item string) string {
	if item == "" {
		return ""
	}
	return prefix + item + suffix
}

// WrapEach wraps every non-empty entry of a Sequence. A Scalar always yields a
// one-element Sequence, even when the wrapped result is empty.
func WrapEach(prefix, suffix string, l Lines) Sequence {
	switch v := l.(type) {
	case Scalar:
		return Sequence{Wrap(prefix, suffix, string(v))}
	case Sequence:
		out := make(Sequence, 0, len(v))
		for _, item := range v {
			if item == "" {
				continue
			}
			out = append(out, Wrap(prefix, suffix, item))
		}
		return out
	default:
		return Sequence{}
	}
}

// Tag wraps item in <name>...</name>. Empty content omits the element.
func Tag(name, item string) string {
	return Wrap(open(name), closing(name), item)
}

// TagEach applies Tag to every entry, following WrapEach.
func TagEach(name string, l Lines) Sequence {
	return WrapEach(open(name), closing(name), l)
}

// BR returns a self-closing line break.
func BR() string {
	return "<br/>"
}

func open(name string) string {
	return "<" + name + ">"
}

func closing(name string) string {
	return "</" + name + ">"
}
