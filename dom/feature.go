package dom

// Feature is the capability interface of all KML feature elements
// (Placemark, Document, Folder). A Feature answers IsA(TypeFeature).
type Feature interface {
	Element
	HasName() bool
	Name() string
	SetName(name string)
	HasVisibility() bool
	Visibility() bool
	SetVisibility(visibility bool)
	HasOpen() bool
	Open() bool
	SetOpen(open bool)
	HasAddress() bool
	Address() string
	SetAddress(address string)
	HasDescription() bool
	Description() string
	SetDescription(description string)
	HasStyleURL() bool
	StyleURL() string
	SetStyleURL(styleURL string)
}

// feature implements the simple fields shared by all KML features.
// Embedded by the concrete feature types, never instantiated alone.
type feature struct {
	object
	name           string
	hasName        bool
	visibility     bool
	hasVisibility  bool
	open           bool
	hasOpen        bool
	address        string
	hasAddress     bool
	description    string
	hasDescription bool
	styleURL       string
	hasStyleURL    bool
}

func (f *feature) IsA(t KmlDomType) bool {
	return t == TypeFeature || f.object.IsA(t)
}

// AddElement claims the simple fields shared by all features. A field
// whose character data does not convert is not consumed but handed on,
// so the base preserves it instead of losing it.
func (f *feature) AddElement(child Element) {
	if child == nil {
		return
	}
	switch child.Type() {
	case TypeName:
		if child.SetString(&f.name) {
			f.hasName = true
			return
		}
	case TypeVisibility:
		if child.SetBool(&f.visibility) {
			f.hasVisibility = true
			return
		}
	case TypeOpen:
		if child.SetBool(&f.open) {
			f.hasOpen = true
			return
		}
	case TypeAddress:
		if child.SetString(&f.address) {
			f.hasAddress = true
			return
		}
	case TypeDescription:
		if child.SetString(&f.description) {
			f.hasDescription = true
			return
		}
	case TypeStyleURL:
		if child.SetString(&f.styleURL) {
			f.hasStyleURL = true
			return
		}
	}
	f.object.AddElement(child)
}

// serializeFields emits the shared feature fields in schema order.
// Called by the concrete types near the start of their Serialize.
func (f *feature) serializeFields(s Serializer) {
	if f.hasName {
		s.SaveStringField(TypeName, f.name)
	}
	if f.hasVisibility {
		s.SaveBoolField(TypeVisibility, f.visibility)
	}
	if f.hasOpen {
		s.SaveBoolField(TypeOpen, f.open)
	}
	if f.hasAddress {
		s.SaveStringField(TypeAddress, f.address)
	}
	if f.hasDescription {
		s.SaveStringField(TypeDescription, f.description)
	}
	if f.hasStyleURL {
		s.SaveStringField(TypeStyleURL, f.styleURL)
	}
}

func (f *feature) HasName() bool { return f.hasName }
func (f *feature) Name() string  { return f.name }
func (f *feature) SetName(name string) {
	f.name, f.hasName = name, true
}

func (f *feature) HasVisibility() bool { return f.hasVisibility }
func (f *feature) Visibility() bool    { return f.visibility }
func (f *feature) SetVisibility(visibility bool) {
	f.visibility, f.hasVisibility = visibility, true
}

func (f *feature) HasOpen() bool { return f.hasOpen }
func (f *feature) Open() bool    { return f.open }
func (f *feature) SetOpen(open bool) {
	f.open, f.hasOpen = open, true
}

func (f *feature) HasAddress() bool { return f.hasAddress }
func (f *feature) Address() string  { return f.address }
func (f *feature) SetAddress(address string) {
	f.address, f.hasAddress = address, true
}

func (f *feature) HasDescription() bool { return f.hasDescription }
func (f *feature) Description() string  { return f.description }
func (f *feature) SetDescription(description string) {
	f.description, f.hasDescription = description, true
}

func (f *feature) HasStyleURL() bool { return f.hasStyleURL }
func (f *feature) StyleURL() string  { return f.styleURL }
func (f *feature) SetStyleURL(styleURL string) {
	f.styleURL, f.hasStyleURL = styleURL, true
}

// Container is the capability interface of the feature-collection
// types (Document, Folder). A Container answers IsA(TypeContainer).
type Container interface {
	Feature
	AddFeature(f Feature) bool
	FeatureCount() int
	FeatureAt(i int) Feature
}

// container implements the ordered feature collection shared by
// Document and Folder.
type container struct {
	feature
	features []Feature
}

func (c *container) IsA(t KmlDomType) bool {
	return t == TypeContainer || c.feature.IsA(t)
}

// AddFeature appends f to this container's features, taking ownership.
// A nil f is a no-op; an f which already has a parent is refused and
// the collection is left unchanged.
func (c *container) AddFeature(f Feature) bool {
	return AddComplexChild(c.owner(), f, &c.features)
}

// FeatureCount returns the number of features in this container.
func (c *container) FeatureCount() int {
	return len(c.features)
}

// FeatureAt returns the i-th feature, in document order.
func (c *container) FeatureAt(i int) Feature {
	return c.features[i]
}

func (c *container) AddElement(child Element) {
	if child == nil {
		return
	}
	if child.IsA(TypeFeature) {
		if c.AddFeature(child.(Feature)) {
			return
		}
	}
	c.feature.AddElement(child)
}

// serializeFeatures emits the collected features in document order.
func (c *container) serializeFeatures(s Serializer) {
	for _, f := range c.features {
		s.SaveElement(f)
	}
}
