package option

// Package option renders typed settings controls. Each control binds a widget
// to a value owned by an external store: it reads the current value from its
// Binding and writes changes back through the binding's commit function.
// Number input is coerced into range on blur, slider drags are debounced, and
// malformed configuration renders an inline "Invalid Type" label instead of
// failing the page.
