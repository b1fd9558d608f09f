// SPDX-License-Identifier: GPL-3.0-or-later

package info

// VERSION of bumpytrack, kept current by bumpytrack itself (see .bumpytrack.yml)
const VERSION = "v0.1.0"
