package web

// Marketing copy for the public pages, kept as markdown and rendered through
// goldmark so the layout can carry it safely.

const landingCopy = `
# Building Davao del Norte, one project at a time

Jecati Construction Services is a family-run contractor and heavy equipment
rental company serving Tagum City and the wider Davao region. From site
preparation to finished structures, we bring the machines, the crew and the
experience.

**Construction services.** Residential builds, commercial fit-outs, road
works and earthmoving, handled end to end by our in-house team.

**Heavy equipment rental.** Backhoes, graders, dump trucks and more,
available by the day with an operator included.

Browse our [services](/services), check the [price list](/pricing), or
[send us an inquiry](/contact-us) and we will get back to you within one
business day.
`

const aboutCopy = `
# About Jecati

Jecati Construction Services started in 2015 with a single backhoe and a
commitment to showing up on time. Today we run a full fleet of heavy
equipment and a crew of licensed engineers, foremen and operators.

We believe good construction is built on three things:

- **Honest estimates.** The price we quote is the price you pay.
- **Maintained equipment.** Every unit is serviced between rentals.
- **Local knowledge.** We know the soil, the suppliers and the permits of
  the Davao region.

Our office is in Tagum City, Davao del Norte. Visit us, or reach out
through the [contact page](/contact-us).
`

const contactCopy = `
# Get in touch

Tell us about your project and we will send a quotation. Include the
equipment or services you need, the project location and your target
dates.

You can also reach us directly:

- Phone: 0917 123 4567
- Email: inquiries@jecati.ph
- Office: Purok 4, Apokon Road, Tagum City, Davao del Norte
`

const servicesCopy = `
# What we do

## Construction services

Site development, structural works, concreting, road works and general
contracting. Our engineers handle design coordination, permits and
supervision so you deal with one accountable team.

## Heavy equipment rental

Daily and weekly rental of backhoes, graders, rollers, dump trucks and
water trucks. Rates include a qualified operator; fuel arrangements are
flexible. See the [price list](/pricing) for current rates.
`
