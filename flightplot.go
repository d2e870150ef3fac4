// This package contains the track types for the flight plotter: raw GPS
// datapoints, the quantities derived from them, and unit systems. No
// rendering or UI imports.
package flightplot
