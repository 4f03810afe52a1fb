// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

/*
The hooppdf package contains tools and functions to turn photographs of
round embroidery hoops into PDFs ready for printing, with each hoop
centred on its own page, scaled to the same physical size, and with
everything outside the hoop replaced by white.

Introduction

Hoops are photographed or scanned at whatever size and position is
convenient. For each image the hoop is found with a Hough circle
transform, the square around it is cropped and scaled so that the hoop
is a fixed fraction of the page width across, the corners outside the
hoop are made white, and the result is placed in the middle of a page.
The geometry is in the hoop subpackage; this package holds the settings,
the PDF writer and the places the PDFs can be saved to.

The main tool is hooppdf, which processes a whole directory of images.
Presuming you have the go tools (and OpenCV) installed, you can install
it, and the findcircle tool which is useful for tuning, with this
command:
  go install bastidor.xyz/hooppdf/cmd/...

All of the tools will give information on what they do and how they work
with the '-h' flag, so for example:
  hooppdf -h

Running a batch

Put the images in a directory, and run hooppdf on it, naming the
directory to save the PDFs to:
  hooppdf -o pdfs images

One PDF is made for each image, named after it, so images/0001.jpg
becomes pdfs/0001.pdf. Images in which no hoop can be found are
skipped, with a warning, and the run carries on with the next image.
A summary of the images processed and skipped is shown at the end.

PDFs can be saved to an S3 bucket instead of a local directory, using
the '--bucket' and '--prefix' flags. Credentials are found in the usual
places, such as ~/.aws/credentials.

Settings

The detection parameters and page settings can be set in a TOML file,
passed with the '--config' flag, and overridden by flags. The defaults are:

  min_distance = 32             # minimum distance between circle centres
  edge_sensitivity = 30         # lower detects weaker edges
  accumulator_threshold = 550   # higher finds fewer, stronger circles
  accumulator_scale = 2
  page_width = 595.2755905511812  # A4, in points
  page_height = 841.8897637795277
  diameter_fraction = 0.952380952
  resolution = 1                # image pixels per point
  jpeg_quality = 75
  background = "#ffffff"

If the hoop isn't being found, or the wrong circle is, try findcircle on
a few of the problem images while changing the detection parameters:
  findcircle --accumulator-threshold 400 images/0007.jpg

Graphs

The '--graph' flag saves a graph of the hoop radius found in each image,
which makes it easy to spot images where something other than the hoop
was detected.
*/
package hooppdf
