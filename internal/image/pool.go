package image

// Pool hands out request-scoped images and recycles their buffers.
//
// Pool groups free buffers by byte length, so an image released by one stage
// can back the next stage's output of the same size. It also counts live
// images, which lets a request verify that every intermediate it allocated
// was released.
//
// Thread safety: Pool is not safe for concurrent use. Each request owns its
// own Pool.
type Pool struct {
	free    map[int][][]byte
	maxSize int // max buffers per bucket
	live    int
	limit   int
}

// NewPool creates a pool retaining at most maxPerBucket free buffers of each
// size. A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		free:    make(map[int][][]byte),
		maxSize: maxPerBucket,
	}
}

// SetLimit bounds the pixel count of images handed out by Get.
// A limit of 0 disables the check.
func (p *Pool) SetLimit(maxPixels int) {
	p.limit = maxPixels
}

// Get returns a zeroed image with the given shape. The image is counted as
// live until it is released or detached.
func (p *Pool) Get(width, height, channels int, format SampleFormat) (*Image, error) {
	if err := validate(width, height, channels, format); err != nil {
		return nil, err
	}
	if p.limit > 0 && width*height > p.limit {
		return nil, ErrTooLarge
	}

	size := byteLen(width, height, channels, format)
	var data []byte
	if bucket := p.free[size]; len(bucket) > 0 {
		data = bucket[len(bucket)-1]
		p.free[size] = bucket[:len(bucket)-1]
		clear(data)
	} else {
		data = make([]byte, size)
	}

	p.live++
	return &Image{
		data:     data,
		width:    width,
		height:   height,
		channels: channels,
		format:   format,
		pool:     p,
	}, nil
}

// Live returns the number of images handed out and not yet released.
func (p *Pool) Live() int {
	return p.live
}

// put recycles the buffer of a released image.
func (p *Pool) put(m *Image) {
	p.live--
	size := len(m.data)
	bucket := p.free[size]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.free[size] = append(bucket, m.data)
}

// forget drops a detached image from the live count.
func (p *Pool) forget() {
	p.live--
}
