// Package filter provides convolution filters over image sample planes.
//
// This package contains:
//   - Kernel construction (sampled Gaussian, Sobel)
//   - Separable and 2-D convolution with edge extension
//   - Color matrix remapping
//   - Halo generation (blur + recolor + composite under the source)
//   - Sobel and Canny edge detection
//
// Filters split an image into float32 planes, one per channel, and quantize
// back to the image's sample format on the way out. Every band, alpha
// included, is filtered independently.
package filter
