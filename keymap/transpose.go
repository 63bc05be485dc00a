package keymap

// Transpose converts layer-major bindings into a position-major matrix using the
// default behavior table.
func Transpose(layers []Layer) PositionMatrix {
	return defaultDecoder.Transpose(layers)
}

// Transpose converts layer-major bindings into a position-major matrix:
// result[position][layer] holds the decorated binding of layers[layer].Bindings[position].
//
// Every row has one cell per layer. Layers shorter than the longest one leave nil
// cells at the positions they do not define. Input without any bindings yields an
// empty matrix.
func (d *Decoder) Transpose(layers []Layer) PositionMatrix {
	positions := 0
	for _, l := range layers {
		positions = max(positions, len(l.Bindings))
	}

	out := make(PositionMatrix, positions)
	if positions == 0 {
		return out
	}
	for pos := range out {
		out[pos] = make([]*DecoratedBinding, len(layers))
	}
	for li, l := range layers {
		for pos, b := range l.Bindings {
			db := d.decorate(b)
			out[pos][li] = &db
		}
	}
	return out
}
