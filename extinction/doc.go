// Package extinction evaluates interstellar dust extinction laws.
//
// Every law maps a wavelength to the extinction A(λ) in magnitudes for a given
// total V-band extinction A(V):
//
//   - [CCM89]: Cardelli, Clayton & Mathis (1989), 1000 Å to 33333 Å
//   - [OD94]:  O'Donnell (1994) revision of the CCM89 optical/NIR fit
//   - [F99]:   Fitzpatrick (1999), 910 Å to 60000 Å, spline based
//
// Internally each law works in inverse microns, x = 1e4/λ for λ in angstroms.
// Wavelengths are given in angstroms unless [WithUnit] selects
// [UnitInverseMicron].
//
// Results scale linearly with A(V). A wavelength outside the supported range
// of a law fails the whole call with a [*DomainError]; no partial result is
// returned.
//
// [Apply] and [Remove] redden or deredden a flux array with a computed
// extinction curve.
package extinction
