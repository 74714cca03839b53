package snapshot

import (
	"go.trai.ch/instant/internal/core/domain"
	"go.trai.ch/instant/internal/engine/codec"
	"go.trai.ch/zerr"
)

// sectionEnd terminates a property section.
const sectionEnd = ""

// currentValue evaluates a property value; nil means absent.
func currentValue(src domain.ValueSource) (any, error) {
	if src == nil {
		return nil, nil
	}
	return src.Get()
}

// writeProperties writes the output section then the input section of t.
// Properties without a value are left out.
func writeProperties(w *codec.Writer, t *domain.Task, probs *problems) error {
	for _, p := range t.Outputs {
		v, err := currentValue(p.Value)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to compute output value"), "property", p.Name)
		}
		if v == nil {
			if !p.Optional {
				if err := probs.missingValue(t, p.Name); err != nil {
					return err
				}
			}
			continue
		}
		if err := writeOutput(w, p, v); err != nil {
			return zerr.With(err, "property", p.Name)
		}
	}
	if err := w.WriteString(sectionEnd); err != nil {
		return err
	}

	for _, p := range t.Inputs {
		v, err := currentValue(p.Value)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to compute input value"), "property", p.Name)
		}
		if v == nil {
			if !p.Optional {
				if err := probs.missingValue(t, p.Name); err != nil {
					return err
				}
			}
			continue
		}
		if err := writeInput(w, p, v); err != nil {
			return zerr.With(err, "property", p.Name)
		}
	}
	return w.WriteString(sectionEnd)
}

func writeOutput(w *codec.Writer, p domain.OutputProperty, v any) error {
	if err := w.WriteString(p.Name); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(domain.KindOutput)); err != nil {
		return err
	}
	if err := w.WriteValue(v); err != nil {
		return err
	}
	if err := w.WriteBool(p.Optional); err != nil {
		return err
	}
	return w.WriteUint(uint64(p.Type))
}

func writeInput(w *codec.Writer, p domain.InputProperty, v any) error {
	if err := w.WriteString(p.Name); err != nil {
		return err
	}
	if err := w.WriteValue(v); err != nil {
		return err
	}
	if err := w.WriteBool(p.Optional); err != nil {
		return err
	}
	if err := w.WriteBool(p.IsFile()); err != nil {
		return err
	}
	if !p.IsFile() {
		return nil
	}
	if err := w.WriteUint(uint64(p.File.Type)); err != nil {
		return err
	}
	if err := w.WriteBool(p.File.SkipWhenEmpty); err != nil {
		return err
	}
	return w.WriteString(string(p.File.Normalizer))
}

// readProperties reads both sections and declares each property on b.
func readProperties(r *codec.Reader, b *domain.TaskBuilder) error {
	for {
		name, err := r.ReadString()
		if err != nil {
			return zerr.Wrap(err, "failed to read output name")
		}
		if name == sectionEnd {
			break
		}
		if err := readOutput(r, b, name); err != nil {
			return zerr.With(err, "property", name)
		}
	}

	for {
		name, err := r.ReadString()
		if err != nil {
			return zerr.Wrap(err, "failed to read input name")
		}
		if name == sectionEnd {
			return nil
		}
		if err := readInput(r, b, name); err != nil {
			return zerr.With(err, "property", name)
		}
	}
}

func readOutput(r *codec.Reader, b *domain.TaskBuilder, name string) error {
	kind, err := r.ReadUint()
	if err != nil {
		return err
	}
	if domain.PropertyKind(kind) != domain.KindOutput {
		return zerr.With(zerr.Wrap(domain.ErrCorruptEntry, "unexpected property kind"), "kind", kind)
	}
	v, err := r.ReadValue()
	if err != nil {
		return err
	}
	optional, err := r.ReadBool()
	if err != nil {
		return err
	}
	typ, err := r.ReadUint()
	if err != nil {
		return err
	}
	if !domain.OutputFileType(typ).Valid() {
		return zerr.With(zerr.Wrap(domain.ErrCorruptEntry, "unknown output file type"), "type", typ)
	}
	b.Output(name, domain.OutputFileType(typ), domain.Value(v), optionalIf(optional)...)
	return nil
}

func readInput(r *codec.Reader, b *domain.TaskBuilder, name string) error {
	v, err := r.ReadValue()
	if err != nil {
		return err
	}
	optional, err := r.ReadBool()
	if err != nil {
		return err
	}
	isFile, err := r.ReadBool()
	if err != nil {
		return err
	}
	opts := optionalIf(optional)
	if !isFile {
		b.Input(name, domain.Value(v), opts...)
		return nil
	}

	typ, err := r.ReadUint()
	if err != nil {
		return err
	}
	if !domain.InputFileType(typ).Valid() {
		return zerr.With(zerr.Wrap(domain.ErrCorruptEntry, "unknown input file type"), "type", typ)
	}
	skipWhenEmpty, err := r.ReadBool()
	if err != nil {
		return err
	}
	normalizer, err := r.ReadString()
	if err != nil {
		return err
	}
	opts = append(opts, domain.WithNormalizer(domain.Normalizer(normalizer)))
	if skipWhenEmpty {
		opts = append(opts, domain.SkipWhenEmpty())
	}
	b.FileInput(name, domain.InputFileType(typ), domain.Value(v), opts...)
	return nil
}

func optionalIf(optional bool) []domain.PropertyOption {
	if optional {
		return []domain.PropertyOption{domain.Optional()}
	}
	return nil
}
